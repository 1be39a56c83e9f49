package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
	"github.com/Chodoro/psusphere/pkg/response"
)

// crudService is the surface every entity service exposes to HTTP. T is the
// record shape lists and details return; Req and Patch are the create and
// update payloads.
type crudService[T, Req, Patch any] interface {
	List(ctx context.Context, filter query.Filter) (*query.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, req Req) (*models.Outcome[T], error)
	Update(ctx context.Context, id string, patch Patch) (*models.Outcome[T], error)
	Delete(ctx context.Context, id string) (string, error)
}

// resource implements the five collection endpoints on top of a crudService.
// Entity handlers embed it and add the per-route API docs.
type resource[T, Req, Patch any] struct {
	entity  models.Entity
	prefix  string
	service crudService[T, Req, Patch]
}

func newResource[T, Req, Patch any](entity models.Entity, prefix string, svc crudService[T, Req, Patch]) resource[T, Req, Patch] {
	return resource[T, Req, Patch]{entity: entity, prefix: prefix, service: svc}
}

// listPath is where a successful mutation sends the client back to.
func (r resource[T, Req, Patch]) listPath() string {
	return r.prefix + "/" + r.entity.Path()
}

func (r resource[T, Req, Patch]) list(c *gin.Context) {
	page, err := r.service.List(c.Request.Context(), listFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Items, paginationOf(page))
}

func (r resource[T, Req, Patch]) get(c *gin.Context) {
	record, err := r.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

func (r resource[T, Req, Patch]) create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	outcome, err := r.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, http.StatusCreated, outcome.Record, outcome.Message, r.listPath())
}

func (r resource[T, Req, Patch]) update(c *gin.Context) {
	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	outcome, err := r.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, http.StatusOK, outcome.Record, outcome.Message, r.listPath())
}

func (r resource[T, Req, Patch]) remove(c *gin.Context) {
	message, err := r.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, http.StatusOK, nil, message, r.listPath())
}

// listFilter reads q and page. A missing or malformed page means the first.
func listFilter(c *gin.Context) query.Filter {
	filter := query.Filter{Term: c.Query("q")}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	return filter.Normalize()
}

func paginationOf[T any](page *query.Page[T]) *response.Pagination {
	return &response.Pagination{
		Page:       page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages(),
		HasNext:    page.HasNext(),
		HasPrev:    page.HasPrevious(),
	}
}

func invalidPayload(err error) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}
