package handler

import "context"

// column renders one list cell of a T.
type column[T any] struct {
	header string
	value  func(T) string
}

// field describes one form input. Kind is an HTML input type, "select" or "textarea".
type field struct {
	name     string
	label    string
	kind     string
	step     string
	required bool
	options  func(ctx context.Context) ([]option, error)
}

type option struct {
	Value string
	Label string
}

type navItem struct {
	Slug  string
	Title string
}

// layout is what header and footer need on every page.
type layout struct {
	Title  string
	Nav    []navItem
	Active string
}

type row struct {
	ID    int64
	Cells []string
}

type listView struct {
	layout
	Slug        string
	Singular    string
	Headers     []string
	Rows        []row
	Window      []int
	AllPages    []int
	Current     int
	TotalPages  int
	Total       int
	HasPrevious bool
	HasNext     bool
	Previous    int
	Next        int
}

type fieldView struct {
	Name     string
	Label    string
	Kind     string
	Step     string
	Required bool
	Value    string
	Error    string
	Options  []option
}

type formView struct {
	layout
	Slug     string
	Singular string
	Action   string
	Editing  bool
	Message  string
	Fields   []fieldView
}

type summaryLine struct {
	Label string
	Value string
}

type confirmView struct {
	layout
	Slug     string
	Singular string
	ID       int64
	Page     int
	Prompt   string
	Summary  []summaryLine
}

type errorView struct {
	layout
	Status     int
	StatusText string
	Message    string
	Back       string
}
