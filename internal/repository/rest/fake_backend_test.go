package rest_test

import (
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
)

const apiPrefix = "/api"

// fakeBackend is an in-memory stand-in for one collection of the gym API.
// PUT merges the received fields into the stored row, like the real backend.
type fakeBackend struct {
	mu       sync.Mutex
	idKey    string
	nextID   int64
	rows     map[int64]map[string]any
	lastBody map[string]any
	lastHdr  http.Header
}

func newFakeBackend(path, idKey string) (*fakeBackend, *httptest.Server) {
	fb := &fakeBackend{idKey: idKey, nextID: 1, rows: map[int64]map[string]any{}}
	mux := http.NewServeMux()
	base := apiPrefix + path
	mux.HandleFunc("GET "+apiPrefix+"/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET "+base, fb.list)
	mux.HandleFunc("POST "+base, fb.create)
	mux.HandleFunc("GET "+base+"/{id}", fb.get)
	mux.HandleFunc("PUT "+base+"/{id}", fb.update)
	mux.HandleFunc("DELETE "+base+"/{id}", fb.delete)
	return fb, httptest.NewServer(mux)
}

func (fb *fakeBackend) record(r *http.Request) (map[string]any, bool) {
	fb.lastHdr = r.Header.Clone()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, false
	}
	// the stored row is mutated later, keep the request as sent
	fb.lastBody = maps.Clone(body)
	return body, true
}

func (fb *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.lastHdr = r.Header.Clone()
	ids := make([]int64, 0, len(fb.rows))
	for id := range fb.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, fb.rows[id])
	}
	writeJSON(w, http.StatusOK, out)
}

func (fb *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	body, ok := fb.record(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id := fb.nextID
	fb.nextID++
	body[fb.idKey] = id
	fb.rows[id] = body
	writeJSON(w, http.StatusCreated, body)
}

func (fb *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	row, ok := fb.lookup(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (fb *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	row, ok := fb.lookup(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	body, ok := fb.record(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	for k, v := range body {
		if k == fb.idKey {
			continue
		}
		row[k] = v
	}
	writeJSON(w, http.StatusOK, row)
}

func (fb *fakeBackend) delete(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	row, ok := fb.lookup(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(fb.rows, toInt64(row[fb.idKey]))
	w.WriteHeader(http.StatusNoContent)
}

func (fb *fakeBackend) lookup(r *http.Request) (map[string]any, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil, false
	}
	row, ok := fb.rows[id]
	return row, ok
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
