// File: services/landing/service.go
package landing

import (
	"sort"
	"strings"

	"mindbloom/models"
	"mindbloom/services/table"
)

// MarketPageSize is the number of marketplace items per page.
const MarketPageSize = 6

// ConsultantFilter narrows the consultant finder.
type ConsultantFilter struct {
	Search    string `form:"q"`
	Expertise string `form:"expertise"`
	Sort      string `form:"sort"`
}

// MarketFilter narrows the marketplace.
type MarketFilter struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
}

// Service serves the public landing page from a fixed dataset.
type Service struct {
	data Dataset
}

func NewService(data Dataset) *Service {
	return &Service{data: data}
}

// Consultants filters by search term (name, expertise, location) and
// expertise, then sorts by "rating" (highest first) or "name".
func (s *Service) Consultants(f ConsultantFilter) []models.LandingConsultant {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := []models.LandingConsultant{}
	for _, c := range s.data.Consultants {
		if !anyContains(term, c.Name, c.Expertise, c.Location) {
			continue
		}
		if !allOrEqual(f.Expertise, c.Expertise) {
			continue
		}
		out = append(out, c)
	}

	switch f.Sort {
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

// Expertises lists the distinct expertise values for the filter choice list.
func (s *Service) Expertises() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range s.data.Consultants {
		if !seen[c.Expertise] {
			seen[c.Expertise] = true
			out = append(out, c.Expertise)
		}
	}
	return out
}

// Marketplace filters by search term (title, description) and category, sorts
// by "popularity", "price_asc" or "price_desc" and returns one page.
func (s *Service) Marketplace(f MarketFilter) table.Page[models.MarketItem] {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	items := []models.MarketItem{}
	for _, it := range s.data.Items {
		if !anyContains(term, it.Title, it.Description) {
			continue
		}
		if !allOrEqual(f.Category, it.Category) {
			continue
		}
		items = append(items, it)
	}

	switch f.Sort {
	case "popularity":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Popularity > items[j].Popularity })
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}
	return paginate(items, f.Page)
}

func (s *Service) FAQs() []models.FAQ {
	return s.data.FAQs
}

// Book accepts a booking request. Nothing is stored or sent.
func (s *Service) Book(req models.BookingRequest) (models.BookingReceipt, error) {
	if err := models.CheckBinding(req); err != nil {
		return models.BookingReceipt{}, err
	}
	return models.BookingReceipt{Submitted: true}, nil
}

func paginate(items []models.MarketItem, page int) table.Page[models.MarketItem] {
	total := len(items)
	totalPages := (total + MarketPageSize - 1) / MarketPageSize
	page = table.ClampPage(page, totalPages)
	start := min((page-1)*MarketPageSize, total)
	end := min(start+MarketPageSize, total)
	return table.Page[models.MarketItem]{Rows: items[start:end], Page: page, TotalPages: totalPages, Total: total}
}

func anyContains(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// allOrEqual treats "" and "all" as no filter.
func allOrEqual(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return filter == value
}
