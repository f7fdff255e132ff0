package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubcategoryRowsOrphan(t *testing.T) {
	categories := []Category{{ID: 1, Name: "Therapy"}}
	subs := []Subcategory{
		{ID: 10, Name: "CBT", CategoryID: 1},
		{ID: 11, Name: "Lost", CategoryID: 99},
	}

	rows := SubcategoryRows(subs, categories)
	assert.Equal(t, "Therapy", rows[0].CategoryName)
	assert.Equal(t, OrphanLabel, rows[1].CategoryName)
}

func TestSubcategoryValidateNeedsLoadedCategory(t *testing.T) {
	categories := []Category{{ID: 1, Name: "Therapy"}}

	assert.NoError(t, Subcategory{Name: "CBT", CategoryID: 1}.Validate(categories))
	assert.Error(t, Subcategory{Name: "CBT", CategoryID: 2}.Validate(categories))
	assert.Error(t, Subcategory{CategoryID: 1}.Validate(categories))
}

func TestFilterSubcategoriesCascades(t *testing.T) {
	subs := []Subcategory{
		{ID: 10, CategoryID: 1},
		{ID: 20, CategoryID: 2},
		{ID: 11, CategoryID: 1},
		{ID: 30, CategoryID: 3},
	}

	got := FilterSubcategories(subs, []int64{1, 3})
	ids := make([]int64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{10, 11, 30}, ids)
	assert.Empty(t, FilterSubcategories(subs, nil))
}
