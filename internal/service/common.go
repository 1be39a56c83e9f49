package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

// listCachePattern matches every cached list page of every entity.
const listCachePattern = "psusphere:list:*"

// listGenerationKey holds the list cache generation. Every mutation bumps it,
// so a page loaded before the mutation but stored after it is written under
// a key no later read builds.
const listGenerationKey = "psusphere:listgen"

// Mutation actions used as metric labels.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Hooks carries the optional cross-cutting collaborators shared by the
// entity services. Zero values disable caching and metrics.
type Hooks struct {
	Cache   *CacheService
	Metrics *MetricsService
}

func listCacheKey(gen int64, entity models.Entity, f query.Filter) string {
	return fmt.Sprintf("psusphere:list:%d:%s:%d:%d:%s", gen, entity, f.PageSize, f.Page, strings.ToLower(f.Term))
}

// cachedList serves one list page, reading through the list cache when it
// is enabled.
func cachedList[T any](ctx context.Context, hooks Hooks, logger *zap.Logger, entity models.Entity, filter query.Filter, load func(context.Context, query.Filter) ([]T, int, error)) (*query.Page[T], error) {
	f := filter.Normalize()
	gen, cacheable := hooks.Cache.Generation(ctx, listGenerationKey)
	key := listCacheKey(gen, entity, f)

	if cacheable {
		var cached query.Page[T]
		if hit, err := hooks.Cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	items, total, err := load(ctx, f)
	if err != nil {
		logger.Error("list failed", zap.String("entity", string(entity)), zap.Error(err))
		return nil, internalError(err, fmt.Sprintf("failed to list %s", entity.Path()))
	}
	page := query.NewPage(items, f, total)
	if cacheable {
		_ = hooks.Cache.Set(ctx, key, page, 0)
	}
	return page, nil
}

// mutated drops cached list pages and counts the mutation.
func (h Hooks) mutated(ctx context.Context, logger *zap.Logger, entity models.Entity, action string) {
	if err := h.Cache.Invalidate(ctx, listGenerationKey, listCachePattern); err != nil {
		logger.Warn("list cache invalidation failed", zap.String("entity", string(entity)), zap.Error(err))
	}
	h.Metrics.RecordMutation(string(entity), action)
}

// parseID rejects identifiers that cannot name a stored record.
func parseID(entity models.Entity, id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", notFound(entity)
	}
	return parsed.String(), nil
}

func notFound(entity models.Entity) error {
	return appErrors.Clone(appErrors.ErrNotFound, strings.ToLower(entity.Label())+" not found")
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

// lookupError maps a repository read failure for one record.
func lookupError(entity models.Entity, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity)
	}
	return internalError(err, fmt.Sprintf("failed to load %s", strings.ToLower(entity.Label())))
}

// writeError maps a repository write failure. Foreign key violations that
// slip past the pre-checks surface as INTEGRITY_VIOLATION.
func writeError(entity models.Entity, action string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity)
	}
	if errors.Is(err, appErrors.ErrIntegrity) {
		return appErrors.FromError(err)
	}
	return internalError(err, fmt.Sprintf("failed to %s %s", action, strings.ToLower(entity.Label())))
}

// blocked builds the INTEGRITY_VIOLATION returned when a delete would orphan
// dependent records.
func blocked(entity models.Entity, deps models.Dependents) error {
	kinds := make([]string, 0, len(deps))
	details := make(map[string]string, len(deps))
	for dep, n := range deps {
		if n == 0 {
			continue
		}
		kinds = append(kinds, dep.Path())
		details[dep.Path()] = fmt.Sprintf("%d", n)
	}
	sort.Strings(kinds)
	err := appErrors.Clone(appErrors.ErrIntegrity, fmt.Sprintf("%s is still referenced by %s", strings.ToLower(entity.Label()), strings.Join(kinds, ", ")))
	err.Details = details
	return err
}

// referenceCheck asks whether one referenced record exists.
type referenceCheck struct {
	field  string
	entity models.Entity
	id     string
	exists func(ctx context.Context, id string) (bool, error)
}

// checkReferences verifies every referenced record exists. Missing ones are
// reported together as field level validation details.
func checkReferences(ctx context.Context, message string, checks ...referenceCheck) error {
	details := map[string]string{}
	for _, c := range checks {
		found, err := c.exists(ctx, c.id)
		if err != nil {
			return internalError(err, fmt.Sprintf("failed to check %s", strings.ToLower(c.entity.Label())))
		}
		if !found {
			details[c.field] = strings.ToLower(c.entity.Label()) + " does not exist"
		}
	}
	if len(details) > 0 {
		return appErrors.Validation(message, details)
	}
	return nil
}
