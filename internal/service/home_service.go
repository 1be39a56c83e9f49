package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
)

// HomeService assembles the landing page.
type HomeService struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewHomeService constructs the home service.
func NewHomeService(catalog Catalog, logger *zap.Logger) *HomeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeService{catalog: catalog, logger: logger}
}

// Overview lists every organization, unpaginated and in list order, with
// the number of stored records per entity.
func (s *HomeService) Overview(ctx context.Context) (*models.HomeOverview, error) {
	orgs, err := collectAll(ctx, s.catalog.Organizations, "", query.MaxPageSize)
	if err != nil {
		return nil, err
	}
	if orgs == nil {
		orgs = []models.OrganizationDetail{}
	}

	counts := make(map[models.Entity]int, len(models.Entities))
	counters := map[models.Entity]func(context.Context) (int, error){
		models.EntityCollege:   func(ctx context.Context) (int, error) { return count(ctx, s.catalog.Colleges) },
		models.EntityProgram:   func(ctx context.Context) (int, error) { return count(ctx, s.catalog.Programs) },
		models.EntityStudent:   func(ctx context.Context) (int, error) { return count(ctx, s.catalog.Students) },
		models.EntityOrgMember: func(ctx context.Context) (int, error) { return count(ctx, s.catalog.OrgMembers) },
	}
	for entity, fn := range counters {
		n, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		counts[entity] = n
	}
	counts[models.EntityOrganization] = len(orgs)

	return &models.HomeOverview{Organizations: orgs, Counts: counts}, nil
}
