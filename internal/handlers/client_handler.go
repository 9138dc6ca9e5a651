package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/httperr"
	"github.com/BruksfildServices01/client-registry/internal/httpresp"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	repo domain.Repository
	uc   *ucClient.Set
}

func NewClientHandler(repo domain.Repository, uc *ucClient.Set) *ClientHandler {
	return &ClientHandler{repo: repo, uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	ClientName       string `json:"client_name"`
	ClientSecondname string `json:"client_secondname"`
	ClientEmail      string `json:"client_email"`
}

type AddPhoneRequest struct {
	Phone string `json:"phone"`
}

// ======================================================
// HELPERS
// ======================================================

func clientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_client_id", "Client id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// SCHEMA
// ======================================================

func (h *ClientHandler) InitSchema(c *gin.Context) {
	if err := h.repo.InitializeSchema(c.Request.Context()); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(204)
}

// ======================================================
// CLIENTS
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	id, err := h.uc.Create.Execute(c.Request.Context(), domain.NewClient{
		Name:       req.ClientName,
		Secondname: req.ClientSecondname,
		Email:      req.ClientEmail,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"client_id": id})
}

// Update takes a JSON object of field -> value. A null value leaves the
// field untouched.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var fields domain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.uc.Update.Execute(c.Request.Context(), id, fields); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.uc.DeleteClient.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if deleted == nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	httpresp.OK(c, gin.H{"client_id": *deleted})
}

// Find treats every query parameter as a substring filter on the field of
// the same name.
func (h *ClientHandler) Find(c *gin.Context) {
	filters := domain.Fields{}
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		filters[domain.Field(key)] = domain.Value(values[0])
	}

	rows, err := h.uc.Find.Execute(c.Request.Context(), filters)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// PHONES
// ======================================================

func (h *ClientHandler) AddPhone(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req AddPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	phone, err := h.uc.AddPhone.Execute(c.Request.Context(), id, req.Phone)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, phone)
}

func (h *ClientHandler) ListPhones(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	phones, err := h.uc.ListPhones.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, phones)
}

func (h *ClientHandler) DeletePhone(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.uc.DeletePhone.Execute(c.Request.Context(), id, c.Param("phone"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if deleted == nil {
		httperr.NotFound(c, "phone_not_found", "Phone not found.")
		return
	}

	httpresp.OK(c, gin.H{"id": *deleted})
}
