package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
	"github.com/Chodoro/psusphere/pkg/export"
)

// exportBatch is the page size used while walking a list for export.
const exportBatch = 100

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders filtered entity lists as CSV or PDF.
type ExportService struct {
	catalog Catalog
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(catalog Catalog, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{catalog: catalog, logger: logger, now: time.Now}
}

// Export renders every record of entity matching term, in list order.
func (s *ExportService) Export(ctx context.Context, entity models.Entity, format, term string) (*ExportFile, error) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Validation("invalid export request", map[string]string{"format": "format must be csv or pdf"})
	}

	dataset, err := s.dataset(ctx, entity, term)
	if err != nil {
		return nil, err
	}
	data, err := exporter.Render(dataset)
	if err != nil {
		s.logger.Error("render export failed", zap.String("entity", string(entity)), zap.String("format", format), zap.Error(err))
		return nil, internalError(err, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", entity.Path(), s.now().UTC().Format("20060102-150405"), exporter.Extension()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

func (s *ExportService) dataset(ctx context.Context, entity models.Entity, term string) (export.Dataset, error) {
	ds := export.Dataset{Title: entity.Label() + " list"}
	switch entity {
	case models.EntityCollege:
		items, err := collectAll(ctx, s.catalog.Colleges, term, exportBatch)
		if err != nil {
			return ds, err
		}
		ds.Title = "Colleges"
		ds.Headers = []string{"College"}
		for _, c := range items {
			ds.Rows = append(ds.Rows, map[string]string{"College": c.CollegeName})
		}
	case models.EntityProgram:
		items, err := collectAll(ctx, s.catalog.Programs, term, exportBatch)
		if err != nil {
			return ds, err
		}
		ds.Title = "Programs"
		ds.Headers = []string{"Program", "College"}
		for _, p := range items {
			ds.Rows = append(ds.Rows, map[string]string{"Program": p.ProgName, "College": p.CollegeName})
		}
	case models.EntityStudent:
		items, err := collectAll(ctx, s.catalog.Students, term, exportBatch)
		if err != nil {
			return ds, err
		}
		ds.Title = "Students"
		ds.Headers = []string{"Student ID", "Last name", "First name", "Middle name", "Program"}
		for _, st := range items {
			ds.Rows = append(ds.Rows, map[string]string{
				"Student ID":  st.StudentID,
				"Last name":   st.Lastname,
				"First name":  st.Firstname,
				"Middle name": st.Middlename,
				"Program":     st.ProgName,
			})
		}
	case models.EntityOrganization:
		items, err := collectAll(ctx, s.catalog.Organizations, term, exportBatch)
		if err != nil {
			return ds, err
		}
		ds.Title = "Organizations"
		ds.Headers = []string{"Name", "College", "Description"}
		for _, o := range items {
			ds.Rows = append(ds.Rows, map[string]string{"Name": o.Name, "College": o.CollegeName, "Description": o.Description})
		}
	case models.EntityOrgMember:
		items, err := collectAll(ctx, s.catalog.OrgMembers, term, exportBatch)
		if err != nil {
			return ds, err
		}
		ds.Title = "Organization members"
		ds.Headers = []string{"Student ID", "Last name", "First name", "Program", "Organization", "Date joined"}
		for _, m := range items {
			ds.Rows = append(ds.Rows, map[string]string{
				"Student ID":   m.StudentNumber,
				"Last name":    m.Lastname,
				"First name":   m.Firstname,
				"Program":      m.ProgName,
				"Organization": m.OrganizationName,
				"Date joined":  m.DateJoined.String(),
			})
		}
	default:
		return ds, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown entity %q", entity))
	}
	return ds, nil
}
