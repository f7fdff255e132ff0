package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/content"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves blogs and webinars.
type ContentHandler struct {
	responder
	Blogs    *content.Blogs
	Webinars *content.Webinars
}

func NewContentHandler(blogs *content.Blogs, webinars *content.Webinars, sessions SessionCloser) *ContentHandler {
	return &ContentHandler{responder: responder{sessions: sessions}, Blogs: blogs, Webinars: webinars}
}

func (h *ContentHandler) ListBlogsHandler(c *gin.Context) {
	rows, err := h.Blogs.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch blogs", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.BlogColumns)
}

// CreateBlogHandler accepts JSON, or multipart with a "payload" field and an
// optional "thumbnail" file that is uploaded first.
func (h *ContentHandler) CreateBlogHandler(c *gin.Context) {
	blog, thumb, ok := h.bindBlog(c)
	if !ok {
		return
	}
	rows, err := h.Blogs.Create(c.Request.Context(), sessionOf(c), blog, thumb)
	if err != nil {
		h.fail(c, "create blog", err)
		return
	}
	respondList(c, http.StatusCreated, rows, content.BlogColumns)
}

func (h *ContentHandler) UpdateBlogHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	blog, thumb, ok := h.bindBlog(c)
	if !ok {
		return
	}
	rows, err := h.Blogs.Update(c.Request.Context(), sessionOf(c), id, blog, thumb)
	if err != nil {
		h.fail(c, "update blog", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.BlogColumns)
}

func (h *ContentHandler) DeleteBlogHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Blogs.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete blog", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.BlogColumns)
}

func (h *ContentHandler) BlogCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.BlogCategories})
}

func (h *ContentHandler) bindBlog(c *gin.Context) (models.Blog, *models.Attachment, bool) {
	var blog models.Blog
	if err := bindForm(c, &blog); err != nil {
		invalidPayload(c, err)
		return blog, nil, false
	}
	thumb, err := formFile(c, "thumbnail")
	if err != nil {
		badRequest(c, "Invalid file upload", err)
		return blog, nil, false
	}
	return blog, thumb, true
}

func (h *ContentHandler) ListWebinarsHandler(c *gin.Context) {
	rows, err := h.Webinars.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch webinars", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.WebinarColumns)
}

func (h *ContentHandler) CreateWebinarHandler(c *gin.Context) {
	var req models.Webinar
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Webinars.Create(c.Request.Context(), sessionOf(c), req)
	if err != nil {
		h.fail(c, "create webinar", err)
		return
	}
	respondList(c, http.StatusCreated, rows, content.WebinarColumns)
}

func (h *ContentHandler) UpdateWebinarHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.Webinar
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Webinars.Update(c.Request.Context(), sessionOf(c), id, req)
	if err != nil {
		h.fail(c, "update webinar", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.WebinarColumns)
}

func (h *ContentHandler) DeleteWebinarHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Webinars.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete webinar", err)
		return
	}
	respondList(c, http.StatusOK, rows, content.WebinarColumns)
}
