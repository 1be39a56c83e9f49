package service

import (
	"context"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
)

// ListFunc reads one filtered page of an entity.
type ListFunc[T any] func(ctx context.Context, filter query.Filter) (*query.Page[T], error)

// Catalog gathers the list reads of every entity for readers that span
// them, such as the home page and exports.
type Catalog struct {
	Colleges      ListFunc[models.College]
	Programs      ListFunc[models.ProgramDetail]
	Students      ListFunc[models.StudentDetail]
	Organizations ListFunc[models.OrganizationDetail]
	OrgMembers    ListFunc[models.OrgMemberDetail]
}

// NewCatalog wires a Catalog from the entity services.
func NewCatalog(colleges *CollegeService, programs *ProgramService, students *StudentService, organizations *OrganizationService, members *OrgMemberService) Catalog {
	return Catalog{
		Colleges:      colleges.List,
		Programs:      programs.List,
		Students:      students.List,
		Organizations: organizations.List,
		OrgMembers:    members.List,
	}
}

// collectAll walks every page of a filtered list in order, batch rows at a time.
func collectAll[T any](ctx context.Context, list ListFunc[T], term string, batch int) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := list(ctx, query.Filter{Term: term, Page: page, PageSize: batch})
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if !p.HasNext() || len(p.Items) == 0 {
			return all, nil
		}
	}
}

// count reads only the total of an unfiltered list.
func count[T any](ctx context.Context, list ListFunc[T]) (int, error) {
	p, err := list(ctx, query.Filter{PageSize: 1})
	if err != nil {
		return 0, err
	}
	return p.TotalCount, nil
}
