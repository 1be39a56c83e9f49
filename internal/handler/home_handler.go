package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/pkg/response"
)

// HomeService builds the landing page data.
type HomeService interface {
	Overview(ctx context.Context) (*models.HomeOverview, error)
}

// HomeHandler serves the landing page.
type HomeHandler struct {
	home HomeService
}

// NewHomeHandler constructs HomeHandler.
func NewHomeHandler(home HomeService) *HomeHandler {
	return &HomeHandler{home: home}
}

// Overview godoc
// @Summary Landing page
// @Description Every organization, unpaginated, plus record counts per entity.
// @Tags Home
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router / [get]
func (h *HomeHandler) Overview(c *gin.Context) {
	overview, err := h.home.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}
