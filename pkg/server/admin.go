package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/api/v1/apiv1connect"
	"droscher.com/WhiskyReview/pkg/catalog"
	"droscher.com/WhiskyReview/pkg/repository"
	"droscher.com/WhiskyReview/pkg/server/view"
)

// Top5Limit is how many top-5 whiskies the home page shows. More can be
// flagged after confirmation.
const Top5Limit = 5

type AdminServer struct {
	apiv1connect.UnimplementedAdminServiceHandler
	whiskyRepository    repository.WhiskyRepository
	referenceRepository repository.ReferenceRepository
	logger              *zap.Logger
}

func NewAdminServer(whiskyRepo repository.WhiskyRepository, referenceRepo repository.ReferenceRepository, logger *zap.Logger) *AdminServer {
	return &AdminServer{whiskyRepository: whiskyRepo, referenceRepository: referenceRepo, logger: logger}
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrWhiskyNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func parseWhiskyID(id string) (uuid.UUID, error) {
	whiskyID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid whisky id %q", ErrInvalidInput, id)
	}

	return whiskyID, nil
}

func (a *AdminServer) ListWhiskies(ctx context.Context, request *connect.Request[apiv1.ListWhiskiesRequest]) (*connect.Response[apiv1.ListWhiskiesResponse], error) {
	whiskyQuery := repository.WhiskyQuery{Filter: catalog.Filter{Search: request.Msg.Search}}

	switch request.Msg.Show {
	case "", apiv1.ShowAll:
	case apiv1.ShowWhiskyOfWeek:
		whiskyQuery.WeeklyPickOnly = true
	case apiv1.ShowTop5:
		whiskyQuery.Top5Only = true
	default:
		return nil, toConnectError(fmt.Errorf("%w: unknown show filter %q", ErrInvalidInput, request.Msg.Show))
	}

	whiskies, err := a.whiskyRepository.FindWhiskies(ctx, whiskyQuery, catalog.DefaultSort, 0, 0)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&apiv1.ListWhiskiesResponse{Whiskies: view.Whiskies(whiskies, nil)}), nil
}

func (a *AdminServer) GetWhisky(ctx context.Context, request *connect.Request[apiv1.GetWhiskyRequest]) (*connect.Response[apiv1.GetWhiskyResponse], error) {
	whiskyID, err := parseWhiskyID(request.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	whisky, err := a.whiskyRepository.GetWhiskyByID(ctx, whiskyID)
	if err != nil {
		return nil, toConnectError(err)
	}

	// no leniency here: the edit form writes these tags back on save
	tagsByWhisky, err := a.referenceRepository.GetFlavorTagsForWhiskies(ctx, []uuid.UUID{whiskyID})
	if err != nil {
		a.logger.Error("error loading flavor tags", zap.Stringer("whisky_id", whiskyID), zap.Error(err))

		return nil, toConnectError(err)
	}

	flavorTags := tagsByWhisky[whiskyID]
	flavorTagIDs := make([]uint, 0, len(flavorTags))

	for _, flavorTag := range flavorTags {
		flavorTagIDs = append(flavorTagIDs, flavorTag.ID)
	}

	return connect.NewResponse(&apiv1.GetWhiskyResponse{
		Whisky:       view.Whisky(*whisky, flavorTags),
		FlavorTagIDs: flavorTagIDs,
	}), nil
}

func (a *AdminServer) SaveWhisky(ctx context.Context, request *connect.Request[apiv1.SaveWhiskyRequest]) (*connect.Response[apiv1.SaveWhiskyResponse], error) {
	input := request.Msg.Whisky

	if err := ValidateWhiskyInput(input); err != nil {
		return nil, toConnectError(err)
	}

	if err := a.validateRegion(ctx, input); err != nil {
		return nil, toConnectError(err)
	}

	saved, err := a.whiskyRepository.SaveWhisky(ctx, whiskyFromInput(input), input.FlavorTagIDs)
	if err != nil {
		return nil, toConnectError(err)
	}

	a.logger.Info("whisky saved", zap.Stringer("whisky_id", saved.ID), zap.String("name", saved.Name))

	response := &apiv1.SaveWhiskyResponse{ID: saved.ID.String()}

	if saved.IsTop5 {
		if warning := a.top5Warning(ctx); warning != "" {
			response.Warnings = append(response.Warnings, warning)
		}
	}

	return connect.NewResponse(response), nil
}

func (a *AdminServer) validateRegion(ctx context.Context, input apiv1.WhiskyInput) error {
	if input.RegionID == nil || *input.RegionID == 0 {
		return nil
	}

	region, err := a.referenceRepository.GetRegionByID(ctx, *input.RegionID)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			validation := &ValidationError{}
			validation.Add("region_id", "Unknown region")

			return validation
		}

		return err
	}

	if region.OriginID != input.OriginID {
		validation := &ValidationError{}
		validation.Add("region_id", "Region does not belong to the selected origin")

		return validation
	}

	return nil
}

// top5Warning reports an over-full top 5. A failed count is logged and
// produces no warning.
func (a *AdminServer) top5Warning(ctx context.Context) string {
	count, err := a.whiskyRepository.CountTop5(ctx)
	if err != nil {
		a.logger.Warn("error counting top 5 whiskies", zap.Error(err))

		return ""
	}

	if count > Top5Limit {
		return fmt.Sprintf("%d whiskies are marked as top 5, only %d are shown on the home page", count, Top5Limit)
	}

	return ""
}

func (a *AdminServer) DeleteWhisky(ctx context.Context, request *connect.Request[apiv1.DeleteWhiskyRequest]) (*connect.Response[apiv1.DeleteWhiskyResponse], error) {
	whiskyID, err := parseWhiskyID(request.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := a.whiskyRepository.DeleteWhisky(ctx, whiskyID); err != nil {
		return nil, toConnectError(err)
	}

	a.logger.Info("whisky deleted", zap.Stringer("whisky_id", whiskyID))

	return connect.NewResponse(&apiv1.DeleteWhiskyResponse{}), nil
}

func (a *AdminServer) SetWeeklyPick(ctx context.Context, request *connect.Request[apiv1.SetWeeklyPickRequest]) (*connect.Response[apiv1.SetWeeklyPickResponse], error) {
	whiskyID, err := parseWhiskyID(request.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := a.whiskyRepository.SetWeeklyPick(ctx, whiskyID); err != nil {
		return nil, toConnectError(err)
	}

	a.logger.Info("weekly pick set", zap.Stringer("whisky_id", whiskyID))

	return connect.NewResponse(&apiv1.SetWeeklyPickResponse{}), nil
}

// ToggleTop5 flips the top-5 flag. Adding a sixth whisky needs Confirm; without
// it nothing changes and the response asks for confirmation.
func (a *AdminServer) ToggleTop5(ctx context.Context, request *connect.Request[apiv1.ToggleTop5Request]) (*connect.Response[apiv1.ToggleTop5Response], error) {
	whiskyID, err := parseWhiskyID(request.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	whisky, err := a.whiskyRepository.GetWhiskyByID(ctx, whiskyID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if whisky.IsTop5 {
		if err := a.whiskyRepository.SetTop5(ctx, whiskyID, false); err != nil {
			return nil, toConnectError(err)
		}

		return connect.NewResponse(&apiv1.ToggleTop5Response{IsTop5: false}), nil
	}

	count, err := a.whiskyRepository.CountTop5(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	response := &apiv1.ToggleTop5Response{}

	if count >= Top5Limit {
		warning := fmt.Sprintf("%d whiskies are already marked as top 5", count)
		response.Warnings = []string{warning}

		if !request.Msg.Confirm {
			response.NeedsConfirmation = true

			return connect.NewResponse(response), nil
		}

		a.logger.Warn("top 5 over limit", zap.Stringer("whisky_id", whiskyID), zap.Int64("count", count+1))
	}

	if err := a.whiskyRepository.SetTop5(ctx, whiskyID, true); err != nil {
		return nil, toConnectError(err)
	}

	response.IsTop5 = true

	return connect.NewResponse(response), nil
}

var _ apiv1connect.AdminServiceHandler = (*AdminServer)(nil)
