package api

import (
	"arena45/backend/internal/domain"
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programService service.ProgramService
	errs           *ErrorWriter
}

func NewProgramHandler(programService service.ProgramService, errs *ErrorWriter) *ProgramHandler {
	return &ProgramHandler{programService: programService, errs: errs}
}

type programQuery struct {
	Available *bool `form:"available"`
	Featured  *bool `form:"featured"`
}

// CreateProgram godoc
// @Summary Create a training program
// @Tags Programs
// @Accept json
// @Produce json
// @Param program body service.CreateProgramInput true "Program"
// @Success 201 {object} Response "Program created successfully"
// @Failure 400 {object} Response "Validation error or duplicate slug"
// @Router /api/programs [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req service.CreateProgramInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	program, err := h.programService.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to create program")
		return
	}
	respondCreated(c, "Program created successfully", program)
}

// ListPrograms godoc
// @Summary List programs
// @Description Sorted by display order, newest first within the same order.
// @Tags Programs
// @Produce json
// @Param available query bool false "Only available programs"
// @Param featured query bool false "Only featured programs"
// @Success 200 {object} Response
// @Router /api/programs [get]
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	var q programQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	programs, err := h.programService.List(c.Request.Context(), domain.ProgramFilter{
		Available: q.Available,
		Featured:  q.Featured,
	})
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch programs")
		return
	}
	respondList(c, programs, len(programs))
}

// GetProgram godoc
// @Summary Get a program by slug or id
// @Tags Programs
// @Produce json
// @Param slugOrId path string true "Program slug or ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Program not found"
// @Router /api/programs/{slugOrId} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	program, err := h.programService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch program")
		return
	}
	respondOK(c, "", program)
}

// UpdateProgram godoc
// @Summary Update a program
// @Description Only the fields present in the body are changed.
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body service.UpdateProgramInput true "Fields to change"
// @Success 200 {object} Response "Program updated successfully"
// @Failure 400 {object} Response
// @Failure 404 {object} Response "Program not found"
// @Router /api/programs/{id} [patch]
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	id, err := pathID(c, service.ErrProgramNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to update program")
		return
	}
	var req service.UpdateProgramInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	program, err := h.programService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.errs.Write(c, err, "Failed to update program")
		return
	}
	respondOK(c, "Program updated successfully", program)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} Response "Program deleted successfully"
// @Failure 404 {object} Response "Program not found"
// @Router /api/programs/{id} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, err := pathID(c, service.ErrProgramNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to delete program")
		return
	}
	if err := h.programService.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err, "Failed to delete program")
		return
	}
	respondOK(c, "Program deleted successfully", nil)
}
