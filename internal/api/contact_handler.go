package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService service.ContactService
	errs           *ErrorWriter
}

func NewContactHandler(contactService service.ContactService, errs *ErrorWriter) *ContactHandler {
	return &ContactHandler{contactService: contactService, errs: errs}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactInput true "Contact form"
// @Success 201 {object} Response "Contact submission received successfully"
// @Failure 400 {object} Response "Validation error"
// @Failure 429 {object} Response "Too many contact submissions"
// @Router /api/contacts [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req service.CreateContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to submit contact form")
		return
	}
	respondCreated(c, "Contact submission received successfully", contact)
}

// ListContacts godoc
// @Summary List contact submissions
// @Tags Contacts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "new, read, replied or resolved"
// @Success 200 {object} Response
// @Router /api/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var q service.ContactQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	contacts, page, err := h.contactService.List(c.Request.Context(), q)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch contacts")
		return
	}
	respondPage(c, contacts, page)
}

// GetContact godoc
// @Summary Get a contact submission
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Contact not found"
// @Router /api/contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := pathID(c, service.ErrContactNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch contact")
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch contact")
		return
	}
	respondOK(c, "", contact)
}

// UpdateContactStatus godoc
// @Summary Change a contact submission's status
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} Response "Contact updated successfully"
// @Failure 400 {object} Response "Invalid status"
// @Failure 404 {object} Response "Contact not found"
// @Router /api/contacts/{id} [patch]
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	id, err := pathID(c, service.ErrContactNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to update contact")
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	contact, err := h.contactService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.errs.Write(c, err, "Failed to update contact")
		return
	}
	respondOK(c, "Contact updated successfully", contact)
}
