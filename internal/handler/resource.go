package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/paginator"
	"github.com/maxviazov/gym-console/internal/service"
	"github.com/maxviazov/gym-console/pkg/response"
)

// resourceHandler is the list + form + delete feature every gym record shares.
type resourceHandler[T model.Record, F any] struct {
	slug     string
	title    string
	singular string
	svc      service.CRUDService[T, F]
	columns  []column[T]
	fields   []field
	pageSize int
	nav      []navItem
	log      zerolog.Logger
}

func (h *resourceHandler[T, F]) Register(r gin.IRouter) {
	g := r.Group("/" + h.slug)
	{
		g.GET("", h.list)
		g.GET(formSegment, h.newForm)
		g.GET(formSegment+"/:id", h.editForm)
		g.POST(formSegment, h.submit)
		g.POST(formSegment+"/:id", h.submit)
		g.GET("/:id"+deleteSegment, h.confirmDelete)
		g.POST("/:id"+deleteSegment, h.delete)
	}
}

func (h *resourceHandler[T, F]) layout(title string) layout {
	return layout{Title: title, Nav: h.nav, Active: h.slug}
}

func (h *resourceHandler[T, F]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	p := paginator.New(items, h.pageSize)
	// out of range or junk leaves page 1
	if n, err := strconv.Atoi(c.Query(pageParam)); err == nil {
		p.GoToPage(n)
	}

	view := listView{
		layout:      h.layout(h.title),
		Slug:        h.slug,
		Singular:    h.singular,
		Window:      p.VisibleWindow(),
		AllPages:    p.AllPageNumbers(),
		Current:     p.CurrentPage(),
		TotalPages:  p.TotalPages(),
		Total:       p.Len(),
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
		Previous:    p.CurrentPage() - 1,
		Next:        p.CurrentPage() + 1,
	}
	for _, col := range h.columns {
		view.Headers = append(view.Headers, col.header)
	}
	for _, item := range p.PageSlice() {
		view.Rows = append(view.Rows, h.row(item))
	}
	c.HTML(http.StatusOK, "list.html", view)
}

func (h *resourceHandler[T, F]) row(item T) row {
	cells := make([]string, len(h.columns))
	for i, col := range h.columns {
		cells[i] = col.value(item)
	}
	return row{ID: item.RecordID(), Cells: cells}
}

func (h *resourceHandler[T, F]) newForm(c *gin.Context) {
	var zero F
	h.renderForm(c, http.StatusOK, 0, formValues(zero), nil, "")
}

func (h *resourceHandler[T, F]) editForm(c *gin.Context) {
	id := parseID(c)
	form, err := h.svc.Edit(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, id, formValues(form), nil, "")
}

// submit creates when the route has no :id and updates otherwise.
func (h *resourceHandler[T, F]) submit(c *gin.Context) {
	ctx := c.Request.Context()
	editing := c.Param("id") != ""
	var id int64
	if editing {
		// a bad id must not fall back to a create form
		if id = parseID(c); id <= 0 {
			h.renderError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be > 0"}}))
			return
		}
	}

	var form F
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		h.log.Debug().Err(err).Msg("form binding failed")
		h.renderForm(c, http.StatusBadRequest, id, h.submitted(c), nil, "Some values could not be read. Check numbers and dates.")
		return
	}

	var err error
	if editing {
		_, err = h.svc.Update(ctx, id, form)
	} else {
		_, err = h.svc.Create(ctx, form)
	}
	if err != nil {
		if fe := service.FieldErrors(err); fe != nil {
			h.renderForm(c, http.StatusBadRequest, id, h.submitted(c), fe, "")
			return
		}
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+h.slug)
}

func (h *resourceHandler[T, F]) confirmDelete(c *gin.Context) {
	id := parseID(c)
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	r := h.row(rec)
	summary := make([]summaryLine, len(h.columns))
	for i, col := range h.columns {
		summary[i] = summaryLine{Label: col.header, Value: r.Cells[i]}
	}
	c.HTML(http.StatusOK, "confirm.html", confirmView{
		layout:   h.layout("Delete " + h.singular),
		Slug:     h.slug,
		Singular: h.singular,
		ID:       id,
		Page:     pageFrom(c.Query(pageParam)),
		Prompt:   service.DeletePrompt,
		Summary:  summary,
	})
}

func (h *resourceHandler[T, F]) delete(c *gin.Context) {
	id := parseID(c)
	answer := c.PostForm(confirmField) == confirmYes
	confirm := func(context.Context, string) bool { return answer }

	deleted, err := h.svc.Delete(c.Request.Context(), id, confirm)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.log.Debug().Int64("id", id).Bool("deleted", deleted).Msg("delete handled")
	// the list view falls back to page 1 if this page no longer exists
	c.Redirect(http.StatusSeeOther, "/"+h.slug+"?"+pageParam+"="+strconv.Itoa(pageFrom(c.PostForm(pageParam))))
}

func (h *resourceHandler[T, F]) renderForm(c *gin.Context, status int, id int64, values map[string]string, errs []service.FieldError, message string) {
	byField := make(map[string]string, len(errs))
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}

	view := formView{
		layout:   h.layout(h.title),
		Slug:     h.slug,
		Singular: h.singular,
		Action:   "/" + h.slug + formSegment,
		Editing:  id != 0,
		Message:  message,
	}
	if view.Editing {
		view.Action += "/" + strconv.FormatInt(id, 10)
	}
	if len(errs) > 0 && message == "" {
		view.Message = "Please fix the highlighted fields."
	}

	for _, f := range h.fields {
		fv := fieldView{
			Name:     f.name,
			Label:    f.label,
			Kind:     f.kind,
			Step:     f.step,
			Required: f.required,
			Value:    values[f.name],
			Error:    byField[f.name],
		}
		if f.options != nil {
			opts, err := f.options(c.Request.Context())
			if err != nil {
				h.renderError(c, err)
				return
			}
			fv.Options = opts
		}
		view.Fields = append(view.Fields, fv)
	}
	c.HTML(status, "form.html", view)
}

// submitted echoes what the operator typed so a rejected form keeps its input.
func (h *resourceHandler[T, F]) submitted(c *gin.Context) map[string]string {
	out := make(map[string]string, len(h.fields))
	for _, f := range h.fields {
		out[f.name] = c.PostForm(f.name)
	}
	return out
}

func (h *resourceHandler[T, F]) renderError(c *gin.Context, err error) {
	status, payload := response.MapError(err)
	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		h.log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	c.HTML(status, "error.html", errorView{
		layout:     h.layout(h.title),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    payload.Message,
		Back:       "/" + h.slug,
	})
}

// parseID returns 0 for anything that is not a number; services reject ids <= 0.
func parseID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func pageFrom(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
