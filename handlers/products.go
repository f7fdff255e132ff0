package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/product"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves marketplace products. Writes accept multipart bodies
// with the form as a JSON "payload" field and one part per upload.
type ProductHandler struct {
	responder
	Service *product.Service
}

func NewProductHandler(svc *product.Service, sessions SessionCloser) *ProductHandler {
	return &ProductHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch products", err)
		return
	}
	respondList(c, http.StatusOK, rows, product.Columns)
}

func (h *ProductHandler) NewProductFormHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": models.NewProductForm()})
}

// EditProductFormHandler applies one course list edit to a posted form and
// returns the edited form. Nothing is sent to the backend.
func (h *ProductHandler) EditProductFormHandler(c *gin.Context) {
	var req struct {
		Form models.ProductForm `json:"form"`
		Edit models.FormEdit    `json:"edit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	if err := req.Form.ApplyEdit(req.Edit); err != nil {
		h.fail(c, "edit product form", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": req.Form})
}

func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, err := h.Service.EditForm(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "fetch product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": form})
}

func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	form, ok := h.bind(c)
	if !ok {
		return
	}
	rows, err := h.Service.Create(c.Request.Context(), sessionOf(c), form)
	if err != nil {
		h.fail(c, "create product", err)
		return
	}
	respondList(c, http.StatusCreated, rows, product.Columns)
}

func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, ok := h.bind(c)
	if !ok {
		return
	}
	rows, err := h.Service.Update(c.Request.Context(), sessionOf(c), id, form)
	if err != nil {
		h.fail(c, "update product", err)
		return
	}
	respondList(c, http.StatusOK, rows, product.Columns)
}

func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete product", err)
		return
	}
	respondList(c, http.StatusOK, rows, product.Columns)
}

func (h *ProductHandler) bind(c *gin.Context) (models.ProductForm, bool) {
	var form models.ProductForm
	if err := bindForm(c, &form); err != nil {
		invalidPayload(c, err)
		return form, false
	}
	err := formFiles(c, map[string]**models.Attachment{
		"thumbnail":        &form.Course.ThumbnailFile,
		"instructor_image": &form.Course.InstructorImageFile,
		"pdf":              &form.EBook.PDFFile,
		"icon":             &form.App.IconFile,
		"product_image":    &form.Gadget.ProductImageFile,
	})
	if err != nil {
		badRequest(c, "Invalid file upload", err)
		return form, false
	}
	return form, true
}
