package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/WhiskyReview/configs"
	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/catalog"
	"droscher.com/WhiskyReview/pkg/model"
	"droscher.com/WhiskyReview/pkg/repository"
	"droscher.com/WhiskyReview/pkg/server/view"
)

// CatalogServer serves the public, read-only side of the site.
type CatalogServer struct {
	whiskyRepository    repository.WhiskyRepository
	referenceRepository repository.ReferenceRepository
	conf                configs.Catalog
	logger              *zap.Logger
}

func NewCatalogServer(whiskyRepo repository.WhiskyRepository, referenceRepo repository.ReferenceRepository, conf configs.Catalog, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{whiskyRepository: whiskyRepo, referenceRepository: referenceRepo, conf: conf, logger: logger}
}

func (c *CatalogServer) RegisterRoutes(router chi.Router) {
	router.Get("/api/whiskies", c.handleListWhiskies)
	router.Get("/api/whiskies/{id}", c.handleGetWhisky)
	router.Get("/api/home", c.handleHome)
	router.Get("/api/reference", c.handleReference)
}

// ListWhiskies runs one catalog page: region pruning, the flavor tag pre-pass,
// then a count and a row fetch over the same predicate.
func (c *CatalogServer) ListWhiskies(ctx context.Context, state catalog.State) (*apiv1.WhiskyPage, error) {
	pageSize := c.conf.PageSize
	page := state.PageOrDefault()

	if len(state.Filter.Origins) > 0 && len(state.Filter.Regions) > 0 {
		regions, err := c.referenceRepository.GetRegions(ctx)
		if err != nil {
			return nil, err
		}

		state.Filter = state.Filter.RestrictRegions(regions)
	}

	result := &apiv1.WhiskyPage{
		Whiskies: []apiv1.Whisky{},
		Page:     page,
		PageSize: pageSize,
		Query:    state.Encode().Encode(),
	}

	whiskyQuery := repository.WhiskyQuery{Filter: state.Filter}

	if len(state.Filter.FlavorTags) > 0 {
		whiskyIDs, err := c.whiskyRepository.FindWhiskyIDsByFlavorTags(ctx, state.Filter.FlavorTags)
		if err != nil {
			return nil, err
		}

		if len(whiskyIDs) == 0 {
			return result, nil
		}

		whiskyQuery.WhiskyIDs = whiskyIDs
	}

	total, err := c.whiskyRepository.CountWhiskies(ctx, whiskyQuery)
	if err != nil {
		return nil, err
	}

	result.Total = total
	result.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))

	if page > result.TotalPages {
		return result, nil
	}

	offset := (page - 1) * pageSize

	whiskies, err := c.whiskyRepository.FindWhiskies(ctx, whiskyQuery, state.Sort, offset, pageSize)
	if err != nil {
		return nil, err
	}

	result.Whiskies = view.Whiskies(whiskies, c.flavorTags(ctx, whiskies))

	return result, nil
}

// flavorTags resolves tags for a set of rows. A failure is logged and the
// rows are served without tags.
func (c *CatalogServer) flavorTags(ctx context.Context, whiskies []*model.Whisky) map[uuid.UUID][]model.FlavorTag {
	whiskyIDs := make([]uuid.UUID, 0, len(whiskies))
	for _, whisky := range whiskies {
		whiskyIDs = append(whiskyIDs, whisky.ID)
	}

	tagsByWhisky, err := c.referenceRepository.GetFlavorTagsForWhiskies(ctx, whiskyIDs)
	if err != nil {
		c.logger.Warn("serving whiskies without flavor tags", zap.Int("whiskies", len(whiskyIDs)), zap.Error(err))

		return map[uuid.UUID][]model.FlavorTag{}
	}

	return tagsByWhisky
}

func (c *CatalogServer) GetWhisky(ctx context.Context, whiskyID uuid.UUID) (*apiv1.Whisky, error) {
	whisky, err := c.whiskyRepository.GetWhiskyByID(ctx, whiskyID)
	if err != nil {
		return nil, err
	}

	result := view.Whisky(*whisky, c.flavorTags(ctx, []*model.Whisky{whisky})[whisky.ID])

	return &result, nil
}

func (c *CatalogServer) Home(ctx context.Context) (*apiv1.Home, error) {
	weeklyPicks, err := c.whiskyRepository.FindWhiskies(ctx, repository.WhiskyQuery{WeeklyPickOnly: true}, catalog.DefaultSort, 0, 1)
	if err != nil {
		return nil, err
	}

	top5, err := c.whiskyRepository.FindWhiskies(ctx, repository.WhiskyQuery{Top5Only: true}, catalog.DefaultSort, 0, c.conf.HighlightCount)
	if err != nil {
		return nil, err
	}

	latest, err := c.whiskyRepository.FindWhiskies(ctx, repository.WhiskyQuery{}, catalog.DefaultSort, 0, c.conf.LatestCount)
	if err != nil {
		return nil, err
	}

	all := make([]*model.Whisky, 0, len(weeklyPicks)+len(top5)+len(latest))
	all = append(all, weeklyPicks...)
	all = append(all, top5...)
	all = append(all, latest...)
	tagsByWhisky := c.flavorTags(ctx, all)

	home := &apiv1.Home{
		Top5:   view.Whiskies(top5, tagsByWhisky),
		Latest: view.Whiskies(latest, tagsByWhisky),
	}

	if len(weeklyPicks) > 0 {
		weeklyPick := view.Whisky(*weeklyPicks[0], tagsByWhisky[weeklyPicks[0].ID])
		home.WeeklyPick = &weeklyPick
	}

	return home, nil
}

// Reference returns the filter options. Regions are limited to the given
// origins when any are given.
func (c *CatalogServer) Reference(ctx context.Context, origins []uint) (*apiv1.Reference, error) {
	originRows, err := c.referenceRepository.GetOrigins(ctx)
	if err != nil {
		return nil, err
	}

	regions, err := c.referenceRepository.GetRegions(ctx)
	if err != nil {
		return nil, err
	}

	types, err := c.referenceRepository.GetTypes(ctx)
	if err != nil {
		return nil, err
	}

	flavorTags, err := c.referenceRepository.GetFlavorTags(ctx)
	if err != nil {
		return nil, err
	}

	return &apiv1.Reference{
		Origins:     view.Origins(originRows),
		Regions:     view.Regions(catalog.RegionsForOrigins(regions, origins)),
		Types:       view.Types(types),
		FlavorTags:  view.FlavorTagOptions(flavorTags),
		PriceRanges: view.PriceRanges(),
	}, nil
}

func (c *CatalogServer) handleListWhiskies(w http.ResponseWriter, r *http.Request) {
	page, err := c.ListWhiskies(r.Context(), catalog.DecodeState(r.URL.Query()))
	if err != nil {
		c.writeError(w, "error listing whiskies", err)

		return
	}

	c.writeJSON(w, page)
}

func (c *CatalogServer) handleGetWhisky(w http.ResponseWriter, r *http.Request) {
	whiskyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, "error getting whisky", ErrInvalidInput)

		return
	}

	whisky, err := c.GetWhisky(r.Context(), whiskyID)
	if err != nil {
		c.writeError(w, "error getting whisky", err)

		return
	}

	c.writeJSON(w, whisky)
}

func (c *CatalogServer) handleHome(w http.ResponseWriter, r *http.Request) {
	home, err := c.Home(r.Context())
	if err != nil {
		c.writeError(w, "error loading home page", err)

		return
	}

	c.writeJSON(w, home)
}

func (c *CatalogServer) handleReference(w http.ResponseWriter, r *http.Request) {
	origins := catalog.DecodeState(r.URL.Query()).Filter.Origins

	reference, err := c.Reference(r.Context(), origins)
	if err != nil {
		c.writeError(w, "error loading reference data", err)

		return
	}

	c.writeJSON(w, reference)
}

func (c *CatalogServer) writeJSON(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, data); err != nil {
		c.logger.Error("error writing response", zap.Error(err))
	}
}

func (c *CatalogServer) writeError(w http.ResponseWriter, message string, err error) {
	var statusCode int

	var errorCode string

	switch {
	case errors.Is(err, ErrInvalidInput):
		statusCode, errorCode = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, repository.ErrWhiskyNotFound):
		statusCode, errorCode = http.StatusNotFound, "not_found"
	default:
		statusCode, errorCode = http.StatusInternalServerError, "internal"

		c.logger.Error(message, zap.Error(err))
	}

	if writeErr := ErrorResponse(w, statusCode, errorCode, message); writeErr != nil {
		c.logger.Error("error writing response", zap.Error(writeErr))
	}
}
