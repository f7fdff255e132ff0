package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/catalog"
	"mindbloom/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves categories and subcategories.
type CatalogHandler struct {
	responder
	Service *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service, sessions SessionCloser) *CatalogHandler {
	return &CatalogHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	rows, err := h.Service.ListCategories(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch categories", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.CategoryColumns)
}

func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	var req models.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.CreateCategory(c.Request.Context(), sessionOf(c), req)
	if err != nil {
		h.fail(c, "create category", err)
		return
	}
	respondList(c, http.StatusCreated, rows, catalog.CategoryColumns)
}

func (h *CatalogHandler) UpdateCategoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.UpdateCategory(c.Request.Context(), sessionOf(c), id, req)
	if err != nil {
		h.fail(c, "update category", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.CategoryColumns)
}

func (h *CatalogHandler) DeleteCategoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.DeleteCategory(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete category", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.CategoryColumns)
}

func (h *CatalogHandler) ListSubcategoriesHandler(c *gin.Context) {
	rows, err := h.Service.ListSubcategories(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch subcategories", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.SubcategoryColumns)
}

func (h *CatalogHandler) CreateSubcategoryHandler(c *gin.Context) {
	var req models.Subcategory
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.CreateSubcategory(c.Request.Context(), sessionOf(c), req)
	if err != nil {
		h.fail(c, "create subcategory", err)
		return
	}
	respondList(c, http.StatusCreated, rows, catalog.SubcategoryColumns)
}

func (h *CatalogHandler) UpdateSubcategoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.Subcategory
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.UpdateSubcategory(c.Request.Context(), sessionOf(c), id, req)
	if err != nil {
		h.fail(c, "update subcategory", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.SubcategoryColumns)
}

func (h *CatalogHandler) DeleteSubcategoryHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.DeleteSubcategory(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete subcategory", err)
		return
	}
	respondList(c, http.StatusOK, rows, catalog.SubcategoryColumns)
}

// SubcategoryChoicesHandler lists the subcategories of ?category_ids=1,2 for multi-selects.
func (h *CatalogHandler) SubcategoryChoicesHandler(c *gin.Context) {
	ids, err := utils.ParseIDList(c.Query("category_ids"))
	if err != nil {
		badRequest(c, "Invalid category_ids", err)
		return
	}
	subs, err := h.Service.SubcategoryChoices(c.Request.Context(), sessionOf(c), ids)
	if err != nil {
		h.fail(c, "fetch subcategories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subs})
}
