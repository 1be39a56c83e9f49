package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
)

// OrgMemberService is the membership service surface the handler needs.
type OrgMemberService = crudService[models.OrgMemberDetail, service.OrgMemberRequest, service.OrgMemberPatch]

// OrgMemberHandler exposes organization membership endpoints.
type OrgMemberHandler struct {
	resource[models.OrgMemberDetail, service.OrgMemberRequest, service.OrgMemberPatch]
}

// NewOrgMemberHandler constructs OrgMemberHandler.
func NewOrgMemberHandler(svc OrgMemberService, prefix string) *OrgMemberHandler {
	return &OrgMemberHandler{resource: newResource(models.EntityOrgMember, prefix, svc)}
}

// List godoc
// @Summary List organization members
// @Tags Org Members
// @Produce json
// @Param q query string false "Search by member name"
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /org-members [get]
func (h *OrgMemberHandler) List(c *gin.Context) { h.list(c) }

// Get godoc
// @Summary Get membership detail
// @Tags Org Members
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /org-members/{id} [get]
func (h *OrgMemberHandler) Get(c *gin.Context) { h.get(c) }

// Create godoc
// @Summary Add organization member
// @Tags Org Members
// @Accept json
// @Produce json
// @Param payload body service.OrgMemberRequest true "Membership payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /org-members [post]
func (h *OrgMemberHandler) Create(c *gin.Context) { h.create(c) }

// Update godoc
// @Summary Update membership
// @Description Omitted fields keep their stored value.
// @Tags Org Members
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Param payload body service.OrgMemberPatch true "Membership fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /org-members/{id} [put]
func (h *OrgMemberHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @Summary Remove organization member
// @Tags Org Members
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /org-members/{id} [delete]
func (h *OrgMemberHandler) Delete(c *gin.Context) { h.remove(c) }
