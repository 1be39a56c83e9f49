package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
)

// ProgramService is the program service surface the handler needs.
type ProgramService = crudService[models.ProgramDetail, service.ProgramRequest, service.ProgramPatch]

// ProgramHandler exposes program endpoints.
type ProgramHandler struct {
	resource[models.ProgramDetail, service.ProgramRequest, service.ProgramPatch]
}

// NewProgramHandler constructs ProgramHandler.
func NewProgramHandler(svc ProgramService, prefix string) *ProgramHandler {
	return &ProgramHandler{resource: newResource(models.EntityProgram, prefix, svc)}
}

// List godoc
// @Summary List programs
// @Tags Programs
// @Produce json
// @Param q query string false "Search by program or college name"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /programs [get]
func (h *ProgramHandler) List(c *gin.Context) { h.list(c) }

// Get godoc
// @Summary Get programs detail
// @Tags Programs
// @Produce json
// @Param id path string true "Programs ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /programs/{id} [get]
func (h *ProgramHandler) Get(c *gin.Context) { h.get(c) }

// Create godoc
// @Summary Create programs
// @Tags Programs
// @Accept json
// @Produce json
// @Param payload body service.ProgramRequest true "Programs payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /programs [post]
func (h *ProgramHandler) Create(c *gin.Context) { h.create(c) }

// Update godoc
// @Summary Update programs
// @Description Omitted fields keep their stored value.
// @Tags Programs
// @Accept json
// @Produce json
// @Param id path string true "Programs ID"
// @Param payload body service.ProgramPatch true "Programs fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /programs/{id} [put]
func (h *ProgramHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @Summary Delete programs
// @Tags Programs
// @Produce json
// @Param id path string true "Programs ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /programs/{id} [delete]
func (h *ProgramHandler) Delete(c *gin.Context) { h.remove(c) }
