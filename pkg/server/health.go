package server

import (
	"context"
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the listed services as serving while the database
// answers pings.
type HealthChecker struct {
	static *grpchealth.StaticChecker
	db     Pinger
	logger *zap.Logger
}

func NewHealthChecker(db Pinger, logger *zap.Logger, services ...string) *HealthChecker {
	return &HealthChecker{static: grpchealth.NewStaticChecker(services...), db: db, logger: logger}
}

func (h *HealthChecker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	response, err := h.static.Check(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return response, nil
}

// ServeHTTP answers plain GET health probes with the overall status.
func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	statusCode := http.StatusOK

	response, err := h.Check(r.Context(), &grpchealth.CheckRequest{})
	if err != nil {
		statusCode = http.StatusInternalServerError
		if connect.CodeOf(err) == connect.CodeNotFound {
			statusCode = http.StatusNotFound
		}

		_ = ErrorResponse(w, statusCode, connect.CodeOf(err).String(), err.Error())

		return
	}

	if response.Status != grpchealth.StatusServing {
		statusCode = http.StatusServiceUnavailable
	}

	if err := WriteJSON(w, statusCode, map[string]string{"status": HealthStatusName(response.Status)}); err != nil {
		h.logger.Error("error writing response", zap.Error(err))
	}
}

// HealthStatusName is the lower-case name of a health status used in the
// /healthz body.
func HealthStatusName(status grpchealth.Status) string {
	switch status {
	case grpchealth.StatusServing:
		return "serving"
	case grpchealth.StatusNotServing:
		return "not_serving"
	case grpchealth.StatusUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

var _ grpchealth.Checker = (*HealthChecker)(nil)
