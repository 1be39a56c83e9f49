package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/service"
	"github.com/Chodoro/psusphere/pkg/response"
)

// ExportService renders a filtered list as a downloadable file.
type ExportService interface {
	Export(ctx context.Context, entity models.Entity, format, term string) (*service.ExportFile, error)
}

// ExportHandler streams list exports.
type ExportHandler struct {
	exports ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export godoc
// @Summary Export a list
// @Description Downloads every record matching q in list order. format is csv (default) or pdf.
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param entity path string true "colleges, programs, students, organizations or org-members"
// @Param format query string false "csv or pdf"
// @Param q query string false "Search term"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /{entity}/export [get]
func (h *ExportHandler) Export(entity models.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := h.exports.Export(c.Request.Context(), entity, c.DefaultQuery("format", "csv"), c.Query("q"))
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, file.ContentType, file.Data)
	}
}
