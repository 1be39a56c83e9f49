package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
)

// StudentService is the student service surface the handler needs.
type StudentService = crudService[models.StudentDetail, service.StudentRequest, service.StudentPatch]

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	resource[models.StudentDetail, service.StudentRequest, service.StudentPatch]
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(svc StudentService, prefix string) *StudentHandler {
	return &StudentHandler{resource: newResource(models.EntityStudent, prefix, svc)}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param q query string false "Search by student number, names or program"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) { h.list(c) }

// Get godoc
// @Summary Get students detail
// @Tags Students
// @Produce json
// @Param id path string true "Students ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) { h.get(c) }

// Create godoc
// @Summary Create students
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.StudentRequest true "Students payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) { h.create(c) }

// Update godoc
// @Summary Update students
// @Description Omitted fields keep their stored value.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Students ID"
// @Param payload body service.StudentPatch true "Students fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @Summary Delete students
// @Tags Students
// @Produce json
// @Param id path string true "Students ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) { h.remove(c) }
