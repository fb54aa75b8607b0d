package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
	errs               *ErrorWriter
}

func NewTestimonialHandler(testimonialService service.TestimonialService, errs *ErrorWriter) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, errs: errs}
}

// CreateTestimonial godoc
// @Summary Submit a testimonial
// @Description New testimonials stay hidden until approved.
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param testimonial body service.CreateTestimonialInput true "Testimonial"
// @Success 201 {object} Response "Testimonial created successfully"
// @Failure 400 {object} Response "Validation error"
// @Router /api/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req service.CreateTestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	t, err := h.testimonialService.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to create testimonial")
		return
	}
	respondCreated(c, "Testimonial created successfully", t)
}

// ListTestimonials godoc
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Param approved query bool false "Filter by approval"
// @Param featured query bool false "Filter by featured flag"
// @Param program query string false "ems, crossfit, pilates or general"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Response
// @Router /api/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	var q service.TestimonialQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	items, page, err := h.testimonialService.List(c.Request.Context(), q)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch testimonials")
		return
	}
	respondPage(c, items, page)
}

// GetTestimonial godoc
// @Summary Get a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Testimonial not found"
// @Router /api/testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id, err := pathID(c, service.ErrTestimonialNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch testimonial")
		return
	}

	t, err := h.testimonialService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch testimonial")
		return
	}
	respondOK(c, "", t)
}

// UpdateTestimonial godoc
// @Summary Approve or feature a testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param flags body service.UpdateTestimonialInput true "Moderation flags"
// @Success 200 {object} Response "Testimonial updated successfully"
// @Failure 404 {object} Response "Testimonial not found"
// @Router /api/testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := pathID(c, service.ErrTestimonialNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to update testimonial")
		return
	}
	var req service.UpdateTestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	t, err := h.testimonialService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.errs.Write(c, err, "Failed to update testimonial")
		return
	}
	respondOK(c, "Testimonial updated successfully", t)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} Response "Testimonial deleted successfully"
// @Failure 404 {object} Response "Testimonial not found"
// @Router /api/testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := pathID(c, service.ErrTestimonialNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to delete testimonial")
		return
	}
	if err := h.testimonialService.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err, "Failed to delete testimonial")
		return
	}
	respondOK(c, "Testimonial deleted successfully", nil)
}
