package models

// Category is the parent of Subcategory.
type Category struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name" binding:"required"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Subcategory struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name" binding:"required"`
	CategoryID int64  `json:"category_id"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// SubcategoryRow is a subcategory as listed, with its parent's name resolved.
type SubcategoryRow struct {
	Subcategory
	CategoryName string `json:"category_name"`
}

// OrphanLabel is shown for references to a record that is not loaded.
const OrphanLabel = "-"

func (c Category) Validate() error {
	return CheckBinding(c)
}

// Validate checks the subcategory against the currently loaded categories.
func (s Subcategory) Validate(categories []Category) error {
	if err := CheckBinding(s); err != nil {
		return err
	}
	if CategoryName(categories, s.CategoryID) == OrphanLabel {
		return invalid("category_id", "category_id must reference an existing category")
	}
	return nil
}

// CategoryName resolves id against categories, returning OrphanLabel when absent.
func CategoryName(categories []Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return OrphanLabel
}

// SubcategoryRows joins subcategories with their category names.
func SubcategoryRows(subs []Subcategory, categories []Category) []SubcategoryRow {
	rows := make([]SubcategoryRow, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, SubcategoryRow{Subcategory: s, CategoryName: CategoryName(categories, s.CategoryID)})
	}
	return rows
}

// FilterSubcategories keeps the subcategories whose category is among categoryIDs,
// preserving input order. This drives the cascading subcategory choice list.
func FilterSubcategories(subs []Subcategory, categoryIDs []int64) []Subcategory {
	selected := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = struct{}{}
	}
	out := make([]Subcategory, 0, len(subs))
	for _, s := range subs {
		if _, ok := selected[s.CategoryID]; ok {
			out = append(out, s)
		}
	}
	return out
}
