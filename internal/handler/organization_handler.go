package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
)

// OrganizationService is the organization service surface the handler needs.
type OrganizationService = crudService[models.OrganizationDetail, service.OrganizationRequest, service.OrganizationPatch]

// OrganizationHandler exposes organization endpoints.
type OrganizationHandler struct {
	resource[models.OrganizationDetail, service.OrganizationRequest, service.OrganizationPatch]
}

// NewOrganizationHandler constructs OrganizationHandler.
func NewOrganizationHandler(svc OrganizationService, prefix string) *OrganizationHandler {
	return &OrganizationHandler{resource: newResource(models.EntityOrganization, prefix, svc)}
}

// List godoc
// @Summary List organizations
// @Tags Organizations
// @Produce json
// @Param q query string false "Search by name, college or description"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) { h.list(c) }

// Get godoc
// @Summary Get organizations detail
// @Tags Organizations
// @Produce json
// @Param id path string true "Organizations ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c *gin.Context) { h.get(c) }

// Create godoc
// @Summary Create organizations
// @Tags Organizations
// @Accept json
// @Produce json
// @Param payload body service.OrganizationRequest true "Organizations payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) { h.create(c) }

// Update godoc
// @Summary Update organizations
// @Description Omitted fields keep their stored value.
// @Tags Organizations
// @Accept json
// @Produce json
// @Param id path string true "Organizations ID"
// @Param payload body service.OrganizationPatch true "Organizations fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @Summary Delete organizations
// @Tags Organizations
// @Produce json
// @Param id path string true "Organizations ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) { h.remove(c) }
