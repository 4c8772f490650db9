package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/WhiskyReview/pkg/api/v1/apiv1connect"
	"droscher.com/WhiskyReview/pkg/server"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type HealthTestSuite struct {
	suite.Suite
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (suite *HealthTestSuite) TestServing() {
	checker := server.NewHealthChecker(stubPinger{}, zaptest.NewLogger(suite.T()), apiv1connect.AdminServiceName)

	response, err := checker.Check(context.Background(), &grpchealth.CheckRequest{Service: apiv1connect.AdminServiceName})

	suite.Require().NoError(err)
	suite.Equal(grpchealth.StatusServing, response.Status)
}

func (suite *HealthTestSuite) TestDatabaseDown() {
	checker := server.NewHealthChecker(stubPinger{err: errors.New("connection refused")}, zaptest.NewLogger(suite.T()), apiv1connect.AdminServiceName)

	recorder := httptest.NewRecorder()
	checker.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	suite.Equal(http.StatusServiceUnavailable, recorder.Code)
	suite.JSONEq(`{"status":"not_serving"}`, recorder.Body.String())
}

func (suite *HealthTestSuite) TestUnknownService() {
	checker := server.NewHealthChecker(stubPinger{}, zaptest.NewLogger(suite.T()), apiv1connect.AdminServiceName)

	_, err := checker.Check(context.Background(), &grpchealth.CheckRequest{Service: "whiskyreview.v1.Unknown"})

	suite.Error(err)
}

func (suite *HealthTestSuite) TestHealthzServing() {
	checker := server.NewHealthChecker(stubPinger{}, zaptest.NewLogger(suite.T()), apiv1connect.AdminServiceName)

	recorder := httptest.NewRecorder()
	checker.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"serving"}`, recorder.Body.String())
}

func (suite *HealthTestSuite) TestHealthStatusName() {
	suite.Equal("serving", server.HealthStatusName(grpchealth.StatusServing))
	suite.Equal("not_serving", server.HealthStatusName(grpchealth.StatusNotServing))
	suite.Equal("unknown", server.HealthStatusName(grpchealth.StatusUnknown))
}
