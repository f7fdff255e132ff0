// File: services/table/table.go
package table

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Column describes one sortable or display-only column over rows of type T.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	// Value returns the raw value used for sorting.
	Value func(T) any
	// Render is optional display formatting; it does not affect sorting.
	Render func(T) string
}

// Query is one request against a table.
type Query struct {
	Search  string
	SortKey string
	Desc    bool
	Page    int
}

// Page is a searched, sorted and paginated view of the rows. Search, Sort and
// Order echo the applied state so a client can send it back unchanged.
type Page[T any] struct {
	Rows       []T    `json:"rows"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Total      int    `json:"total"`
	Search     string `json:"q"`
	Sort       string `json:"sort,omitempty"`
	Order      string `json:"order,omitempty"`

	// Display holds, per row, the rendered text of the columns that have a Render func.
	Display []map[string]string `json:"display,omitempty"`
}

// Apply searches, sorts and paginates rows. rows itself is never reordered.
func Apply[T any](rows []T, cols []Column[T], q Query) Page[T] {
	filtered := Search(rows, q.Search)
	col, sorted := findColumn(cols, q.SortKey)
	if sorted {
		filtered = Sort(filtered, col.Value, q.Desc)
	}

	page := Paginate(filtered, q.Page)
	page.Display = render(page.Rows, cols)
	page.Search = q.Search
	if sorted {
		page.Sort, page.Order = col.Key, "asc"
		if q.Desc {
			page.Order = "desc"
		}
	}
	return page
}

// Search keeps the rows where any field's string form contains term,
// ignoring case. An empty term keeps every row. Whitespace in term is matched
// literally.
func Search[T any](rows []T, term string) []T {
	term = strings.ToLower(term)
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if term == "" || Matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether the lower-cased term appears in any field of row.
func Matches(row any, term string) bool {
	for _, v := range Fields(row) {
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), term) {
			return true
		}
	}
	return false
}

// Fields returns the values of the exported fields of a struct row, flattening
// embedded structs. Non-struct rows are returned as a single value.
func Fields(row any) []any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return []any{v.Interface()}
	}

	var out []any
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous && fv.Kind() == reflect.Struct {
			out = append(out, Fields(fv.Interface())...)
			continue
		}
		out = append(out, fv.Interface())
	}
	return out
}

// Sort returns a stably sorted copy of rows ordered by value.
func Sort[T any](rows []T, value func(T) any, desc bool) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	if value == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := value(out[i]), value(out[j])
		if desc {
			return Compare(b, a) < 0
		}
		return Compare(a, b) < 0
	})
	return out
}

// Compare orders two raw values of the same kind. Values of different kinds,
// nil and unsupported kinds compare equal.
func Compare(a, b any) int {
	if a == nil || b == nil {
		return 0
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return cmp3(va.Int() < vb.Int(), va.Int() > vb.Int())
	case isUint(va) && isUint(vb):
		return cmp3(va.Uint() < vb.Uint(), va.Uint() > vb.Uint())
	case isFloat(va) && isFloat(vb):
		return cmp3(va.Float() < vb.Float(), va.Float() > vb.Float())
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp3(!va.Bool() && vb.Bool(), va.Bool() && !vb.Bool())
	}
	return 0
}

// Paginate returns the requested page. Out of range pages are clamped.
func Paginate[T any](rows []T, page int) Page[T] {
	total := len(rows)
	totalPages := (total + PageSize - 1) / PageSize
	page = ClampPage(page, totalPages)

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Rows:       rows[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// ClampPage keeps page within [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func render[T any](rows []T, cols []Column[T]) []map[string]string {
	var rendered []Column[T]
	for _, c := range cols {
		if c.Render != nil {
			rendered = append(rendered, c)
		}
	}
	if len(rendered) == 0 {
		return nil
	}
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		m := make(map[string]string, len(rendered))
		for _, c := range rendered {
			m[c.Key] = c.Render(r)
		}
		out[i] = m
	}
	return out
}

func findColumn[T any](cols []Column[T], key string) (Column[T], bool) {
	if key == "" {
		return Column[T]{}, false
	}
	for _, c := range cols {
		if c.Key == key && c.Sortable {
			return c, true
		}
	}
	return Column[T]{}, false
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}
