package table

// State is the interactive state of one table: search term, sort column and page.
type State struct {
	Search  string
	SortKey string
	Desc    bool
	Page    int
}

// ToggleSort sorts by key. The same key again flips the direction; a new key
// starts ascending. The page returns to 1.
func (s *State) ToggleSort(key string) {
	if s.SortKey == key {
		s.Desc = !s.Desc
	} else {
		s.SortKey = key
		s.Desc = false
	}
	s.Page = 1
}

// SetSearch replaces the search term and returns to page 1.
func (s *State) SetSearch(term string) {
	s.Search = term
	s.Page = 1
}

func (s *State) SetPage(page int) {
	s.Page = page
}

func (s State) Query() Query {
	return Query{Search: s.Search, SortKey: s.SortKey, Desc: s.Desc, Page: s.Page}
}
