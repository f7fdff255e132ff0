package table

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// QueryFromRequest restores the table state from q, sort, order and page, then
// applies the optional events in the request: search replaces the term and
// toggle clicks a column header. Either event returns to page 1.
func QueryFromRequest(c *gin.Context) Query {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	s := State{
		Search:  c.Query("q"),
		SortKey: c.Query("sort"),
		Desc:    strings.EqualFold(c.Query("order"), "desc"),
	}
	s.SetPage(page)

	if term, ok := c.GetQuery("search"); ok && term != s.Search {
		s.SetSearch(term)
	}
	if key := c.Query("toggle"); key != "" {
		s.ToggleSort(key)
	}
	return s.Query()
}
