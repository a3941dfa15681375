package handler

import (
	"github.com/gin-gonic/gin"

	"contactbook/src/app/http/dto"
	"contactbook/src/app/http/response"
	"contactbook/src/app/middleware"
	"contactbook/src/core/schema"
	"contactbook/src/core/usecase"
)

// ContactHandler handles /api/contacts endpoints.
type ContactHandler struct {
	contactService *usecase.ContactService
}

func NewContactHandler(contactService *usecase.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List returns a page of contacts.
// GET /api/contacts?limit=&offset=
func (h *ContactHandler) List(c *gin.Context) {
	var q dto.ListContactsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "limit must be 0-500 and offset must not be negative", middleware.GetRequestID(c))
		return
	}

	contacts, err := h.contactService.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Paged(c, schema.NewContactResponses(contacts), len(contacts), q.Limit, q.Offset)
}

// Get returns one contact.
// GET /api/contacts/:contact_id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "contact_id")
	if !ok {
		return
	}
	contact, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewContactResponse(contact))
}

// Create adds a contact.
// POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var in schema.ContactSchema
	if !bindSchema(c, &in) {
		return
	}
	contact, err := h.contactService.Create(c.Request.Context(), in)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, schema.NewContactResponse(contact))
}

// Update replaces every field of a contact.
// PUT /api/contacts/:contact_id
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "contact_id")
	if !ok {
		return
	}
	var in schema.ContactUpdateSchema
	if !bindSchema(c, &in) {
		return
	}
	contact, err := h.contactService.Update(c.Request.Context(), id, in)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewContactResponse(contact))
}

// Delete removes a contact and echoes its last state.
// DELETE /api/contacts/:contact_id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "contact_id")
	if !ok {
		return
	}
	contact, err := h.contactService.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, schema.NewContactResponse(contact))
}
