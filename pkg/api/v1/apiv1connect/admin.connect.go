// Package apiv1connect wires the admin service into connect handlers and
// clients.
//
// This file is maintained by hand. There is no protobuf schema behind the
// admin service, so nothing regenerates it: keep it in step with
// pkg/api/v1/admin.go when adding or changing a procedure.
package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
)

const AdminServiceName = "whiskyreview.v1.AdminService"

const (
	AdminServiceListWhiskiesProcedure  = "/whiskyreview.v1.AdminService/ListWhiskies"
	AdminServiceGetWhiskyProcedure     = "/whiskyreview.v1.AdminService/GetWhisky"
	AdminServiceSaveWhiskyProcedure    = "/whiskyreview.v1.AdminService/SaveWhisky"
	AdminServiceDeleteWhiskyProcedure  = "/whiskyreview.v1.AdminService/DeleteWhisky"
	AdminServiceSetWeeklyPickProcedure = "/whiskyreview.v1.AdminService/SetWeeklyPick"
	AdminServiceToggleTop5Procedure    = "/whiskyreview.v1.AdminService/ToggleTop5"
)

type AdminServiceHandler interface {
	ListWhiskies(context.Context, *connect.Request[apiv1.ListWhiskiesRequest]) (*connect.Response[apiv1.ListWhiskiesResponse], error)
	GetWhisky(context.Context, *connect.Request[apiv1.GetWhiskyRequest]) (*connect.Response[apiv1.GetWhiskyResponse], error)
	SaveWhisky(context.Context, *connect.Request[apiv1.SaveWhiskyRequest]) (*connect.Response[apiv1.SaveWhiskyResponse], error)
	DeleteWhisky(context.Context, *connect.Request[apiv1.DeleteWhiskyRequest]) (*connect.Response[apiv1.DeleteWhiskyResponse], error)
	SetWeeklyPick(context.Context, *connect.Request[apiv1.SetWeeklyPickRequest]) (*connect.Response[apiv1.SetWeeklyPickResponse], error)
	ToggleTop5(context.Context, *connect.Request[apiv1.ToggleTop5Request]) (*connect.Response[apiv1.ToggleTop5Response], error)
}

// NewAdminServiceHandler builds the HTTP handler for the admin service and the
// path to mount it on. Messages travel as JSON.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AdminServiceListWhiskiesProcedure, connect.NewUnaryHandler(AdminServiceListWhiskiesProcedure, svc.ListWhiskies, opts...))
	mux.Handle(AdminServiceGetWhiskyProcedure, connect.NewUnaryHandler(AdminServiceGetWhiskyProcedure, svc.GetWhisky, opts...))
	mux.Handle(AdminServiceSaveWhiskyProcedure, connect.NewUnaryHandler(AdminServiceSaveWhiskyProcedure, svc.SaveWhisky, opts...))
	mux.Handle(AdminServiceDeleteWhiskyProcedure, connect.NewUnaryHandler(AdminServiceDeleteWhiskyProcedure, svc.DeleteWhisky, opts...))
	mux.Handle(AdminServiceSetWeeklyPickProcedure, connect.NewUnaryHandler(AdminServiceSetWeeklyPickProcedure, svc.SetWeeklyPick, opts...))
	mux.Handle(AdminServiceToggleTop5Procedure, connect.NewUnaryHandler(AdminServiceToggleTop5Procedure, svc.ToggleTop5, opts...))

	return "/" + AdminServiceName + "/", mux
}

type AdminServiceClient interface {
	ListWhiskies(context.Context, *connect.Request[apiv1.ListWhiskiesRequest]) (*connect.Response[apiv1.ListWhiskiesResponse], error)
	GetWhisky(context.Context, *connect.Request[apiv1.GetWhiskyRequest]) (*connect.Response[apiv1.GetWhiskyResponse], error)
	SaveWhisky(context.Context, *connect.Request[apiv1.SaveWhiskyRequest]) (*connect.Response[apiv1.SaveWhiskyResponse], error)
	DeleteWhisky(context.Context, *connect.Request[apiv1.DeleteWhiskyRequest]) (*connect.Response[apiv1.DeleteWhiskyResponse], error)
	SetWeeklyPick(context.Context, *connect.Request[apiv1.SetWeeklyPickRequest]) (*connect.Response[apiv1.SetWeeklyPickResponse], error)
	ToggleTop5(context.Context, *connect.Request[apiv1.ToggleTop5Request]) (*connect.Response[apiv1.ToggleTop5Response], error)
}

type adminServiceClient struct {
	listWhiskies  *connect.Client[apiv1.ListWhiskiesRequest, apiv1.ListWhiskiesResponse]
	getWhisky     *connect.Client[apiv1.GetWhiskyRequest, apiv1.GetWhiskyResponse]
	saveWhisky    *connect.Client[apiv1.SaveWhiskyRequest, apiv1.SaveWhiskyResponse]
	deleteWhisky  *connect.Client[apiv1.DeleteWhiskyRequest, apiv1.DeleteWhiskyResponse]
	setWeeklyPick *connect.Client[apiv1.SetWeeklyPickRequest, apiv1.SetWeeklyPickResponse]
	toggleTop5    *connect.Client[apiv1.ToggleTop5Request, apiv1.ToggleTop5Response]
}

func NewAdminServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AdminServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &adminServiceClient{
		listWhiskies:  connect.NewClient[apiv1.ListWhiskiesRequest, apiv1.ListWhiskiesResponse](httpClient, baseURL+AdminServiceListWhiskiesProcedure, opts...),
		getWhisky:     connect.NewClient[apiv1.GetWhiskyRequest, apiv1.GetWhiskyResponse](httpClient, baseURL+AdminServiceGetWhiskyProcedure, opts...),
		saveWhisky:    connect.NewClient[apiv1.SaveWhiskyRequest, apiv1.SaveWhiskyResponse](httpClient, baseURL+AdminServiceSaveWhiskyProcedure, opts...),
		deleteWhisky:  connect.NewClient[apiv1.DeleteWhiskyRequest, apiv1.DeleteWhiskyResponse](httpClient, baseURL+AdminServiceDeleteWhiskyProcedure, opts...),
		setWeeklyPick: connect.NewClient[apiv1.SetWeeklyPickRequest, apiv1.SetWeeklyPickResponse](httpClient, baseURL+AdminServiceSetWeeklyPickProcedure, opts...),
		toggleTop5:    connect.NewClient[apiv1.ToggleTop5Request, apiv1.ToggleTop5Response](httpClient, baseURL+AdminServiceToggleTop5Procedure, opts...),
	}
}

func (c *adminServiceClient) ListWhiskies(ctx context.Context, req *connect.Request[apiv1.ListWhiskiesRequest]) (*connect.Response[apiv1.ListWhiskiesResponse], error) {
	return c.listWhiskies.CallUnary(ctx, req)
}

func (c *adminServiceClient) GetWhisky(ctx context.Context, req *connect.Request[apiv1.GetWhiskyRequest]) (*connect.Response[apiv1.GetWhiskyResponse], error) {
	return c.getWhisky.CallUnary(ctx, req)
}

func (c *adminServiceClient) SaveWhisky(ctx context.Context, req *connect.Request[apiv1.SaveWhiskyRequest]) (*connect.Response[apiv1.SaveWhiskyResponse], error) {
	return c.saveWhisky.CallUnary(ctx, req)
}

func (c *adminServiceClient) DeleteWhisky(ctx context.Context, req *connect.Request[apiv1.DeleteWhiskyRequest]) (*connect.Response[apiv1.DeleteWhiskyResponse], error) {
	return c.deleteWhisky.CallUnary(ctx, req)
}

func (c *adminServiceClient) SetWeeklyPick(ctx context.Context, req *connect.Request[apiv1.SetWeeklyPickRequest]) (*connect.Response[apiv1.SetWeeklyPickResponse], error) {
	return c.setWeeklyPick.CallUnary(ctx, req)
}

func (c *adminServiceClient) ToggleTop5(ctx context.Context, req *connect.Request[apiv1.ToggleTop5Request]) (*connect.Response[apiv1.ToggleTop5Response], error) {
	return c.toggleTop5.CallUnary(ctx, req)
}

type UnimplementedAdminServiceHandler struct{}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(strings.TrimPrefix(procedure, "/")+" is not implemented"))
}

func (UnimplementedAdminServiceHandler) ListWhiskies(context.Context, *connect.Request[apiv1.ListWhiskiesRequest]) (*connect.Response[apiv1.ListWhiskiesResponse], error) {
	return nil, unimplemented(AdminServiceListWhiskiesProcedure)
}

func (UnimplementedAdminServiceHandler) GetWhisky(context.Context, *connect.Request[apiv1.GetWhiskyRequest]) (*connect.Response[apiv1.GetWhiskyResponse], error) {
	return nil, unimplemented(AdminServiceGetWhiskyProcedure)
}

func (UnimplementedAdminServiceHandler) SaveWhisky(context.Context, *connect.Request[apiv1.SaveWhiskyRequest]) (*connect.Response[apiv1.SaveWhiskyResponse], error) {
	return nil, unimplemented(AdminServiceSaveWhiskyProcedure)
}

func (UnimplementedAdminServiceHandler) DeleteWhisky(context.Context, *connect.Request[apiv1.DeleteWhiskyRequest]) (*connect.Response[apiv1.DeleteWhiskyResponse], error) {
	return nil, unimplemented(AdminServiceDeleteWhiskyProcedure)
}

func (UnimplementedAdminServiceHandler) SetWeeklyPick(context.Context, *connect.Request[apiv1.SetWeeklyPickRequest]) (*connect.Response[apiv1.SetWeeklyPickResponse], error) {
	return nil, unimplemented(AdminServiceSetWeeklyPickProcedure)
}

func (UnimplementedAdminServiceHandler) ToggleTop5(context.Context, *connect.Request[apiv1.ToggleTop5Request]) (*connect.Response[apiv1.ToggleTop5Response], error) {
	return nil, unimplemented(AdminServiceToggleTop5Procedure)
}
