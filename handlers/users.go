package handlers

import (
	"net/http"

	"mindbloom/models"
	"mindbloom/services/staff"

	"github.com/gin-gonic/gin"
)

// UserHandler serves back-office staff accounts. Routes are superadmin only.
type UserHandler struct {
	responder
	Service *staff.Service
}

func NewUserHandler(svc *staff.Service, sessions SessionCloser) *UserHandler {
	return &UserHandler{responder: responder{sessions: sessions}, Service: svc}
}

func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context(), sessionOf(c))
	if err != nil {
		h.fail(c, "fetch users", err)
		return
	}
	respondList(c, http.StatusOK, rows, staff.Columns)
}

func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req models.StaffUser
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.Create(c.Request.Context(), sessionOf(c), req)
	if err != nil {
		h.fail(c, "create user", err)
		return
	}
	respondList(c, http.StatusCreated, rows, staff.Columns)
}

func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.StaffUser
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	rows, err := h.Service.Update(c.Request.Context(), sessionOf(c), id, req)
	if err != nil {
		h.fail(c, "update user", err)
		return
	}
	respondList(c, http.StatusOK, rows, staff.Columns)
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.Delete(c.Request.Context(), sessionOf(c), id, confirmed(c))
	if err != nil {
		h.fail(c, "delete user", err)
		return
	}
	respondList(c, http.StatusOK, rows, staff.Columns)
}

func (h *UserHandler) ToggleStatusHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.Service.ToggleStatus(c.Request.Context(), sessionOf(c), id)
	if err != nil {
		h.fail(c, "update user status", err)
		return
	}
	respondList(c, http.StatusOK, rows, staff.Columns)
}
