package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
)

// CollegeService is the college service surface the handler needs.
type CollegeService = crudService[models.College, service.CollegeRequest, service.CollegePatch]

// CollegeHandler exposes college endpoints.
type CollegeHandler struct {
	resource[models.College, service.CollegeRequest, service.CollegePatch]
}

// NewCollegeHandler constructs CollegeHandler. prefix is the API prefix used to build
// the redirect target of mutations.
func NewCollegeHandler(svc CollegeService, prefix string) *CollegeHandler {
	return &CollegeHandler{resource: newResource(models.EntityCollege, prefix, svc)}
}

// List godoc
// @Summary List colleges
// @Tags Colleges
// @Produce json
// @Param q query string false "Search by college name"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /colleges [get]
func (h *CollegeHandler) List(c *gin.Context) { h.list(c) }

// Get godoc
// @Summary Get colleges detail
// @Tags Colleges
// @Produce json
// @Param id path string true "Colleges ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /colleges/{id} [get]
func (h *CollegeHandler) Get(c *gin.Context) { h.get(c) }

// Create godoc
// @Summary Create colleges
// @Tags Colleges
// @Accept json
// @Produce json
// @Param payload body service.CollegeRequest true "Colleges payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /colleges [post]
func (h *CollegeHandler) Create(c *gin.Context) { h.create(c) }

// Update godoc
// @Summary Update colleges
// @Description Omitted fields keep their stored value.
// @Tags Colleges
// @Accept json
// @Produce json
// @Param id path string true "Colleges ID"
// @Param payload body service.CollegePatch true "Colleges fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /colleges/{id} [put]
func (h *CollegeHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @Summary Delete colleges
// @Tags Colleges
// @Produce json
// @Param id path string true "Colleges ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /colleges/{id} [delete]
func (h *CollegeHandler) Delete(c *gin.Context) { h.remove(c) }
