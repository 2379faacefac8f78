package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/pkg/api"
)

// ListServiceName is the fully-qualified name of the ListService service.
const ListServiceName = "shoplist.v1.ListService"

const (
	ListServiceCreateListProcedure    = "/shoplist.v1.ListService/CreateList"
	ListServiceGetListProcedure       = "/shoplist.v1.ListService/GetList"
	ListServiceListListsProcedure     = "/shoplist.v1.ListService/ListLists"
	ListServiceUpdateListProcedure    = "/shoplist.v1.ListService/UpdateList"
	ListServiceDeleteListProcedure    = "/shoplist.v1.ListService/DeleteList"
	ListServiceApplyTemplateProcedure = "/shoplist.v1.ListService/ApplyTemplate"
)

// ListServiceClient is a client for the shoplist.v1.ListService service.
type ListServiceClient interface {
	CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error)
	GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error)
	ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error)
	UpdateList(context.Context, *connect.Request[api.UpdateListRequest]) (*connect.Response[api.UpdateListResponse], error)
	DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error)
	ApplyTemplate(context.Context, *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.ApplyTemplateResponse], error)
}

// NewListServiceClient constructs a client for the shoplist.v1.ListService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewListServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ListServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &listServiceClient{
		createList:    connect.NewClient[api.CreateListRequest, api.CreateListResponse](httpClient, baseURL+ListServiceCreateListProcedure, opts...),
		getList:       connect.NewClient[api.GetListRequest, api.GetListResponse](httpClient, baseURL+ListServiceGetListProcedure, opts...),
		listLists:     connect.NewClient[api.ListListsRequest, api.ListListsResponse](httpClient, baseURL+ListServiceListListsProcedure, opts...),
		updateList:    connect.NewClient[api.UpdateListRequest, api.UpdateListResponse](httpClient, baseURL+ListServiceUpdateListProcedure, opts...),
		deleteList:    connect.NewClient[api.DeleteListRequest, api.DeleteListResponse](httpClient, baseURL+ListServiceDeleteListProcedure, opts...),
		applyTemplate: connect.NewClient[api.ApplyTemplateRequest, api.ApplyTemplateResponse](httpClient, baseURL+ListServiceApplyTemplateProcedure, opts...),
	}
}

type listServiceClient struct {
	createList    *connect.Client[api.CreateListRequest, api.CreateListResponse]
	getList       *connect.Client[api.GetListRequest, api.GetListResponse]
	listLists     *connect.Client[api.ListListsRequest, api.ListListsResponse]
	updateList    *connect.Client[api.UpdateListRequest, api.UpdateListResponse]
	deleteList    *connect.Client[api.DeleteListRequest, api.DeleteListResponse]
	applyTemplate *connect.Client[api.ApplyTemplateRequest, api.ApplyTemplateResponse]
}

func (c *listServiceClient) CreateList(ctx context.Context, req *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	return c.createList.CallUnary(ctx, req)
}

func (c *listServiceClient) GetList(ctx context.Context, req *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	return c.getList.CallUnary(ctx, req)
}

func (c *listServiceClient) ListLists(ctx context.Context, req *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	return c.listLists.CallUnary(ctx, req)
}

func (c *listServiceClient) UpdateList(ctx context.Context, req *connect.Request[api.UpdateListRequest]) (*connect.Response[api.UpdateListResponse], error) {
	return c.updateList.CallUnary(ctx, req)
}

func (c *listServiceClient) DeleteList(ctx context.Context, req *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	return c.deleteList.CallUnary(ctx, req)
}

func (c *listServiceClient) ApplyTemplate(ctx context.Context, req *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.ApplyTemplateResponse], error) {
	return c.applyTemplate.CallUnary(ctx, req)
}

// ListServiceHandler is implemented by the server side of shoplist.v1.ListService.
// ListService manages shopping lists.
type ListServiceHandler interface {
	CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error)
	GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error)
	ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error)
	UpdateList(context.Context, *connect.Request[api.UpdateListRequest]) (*connect.Response[api.UpdateListResponse], error)
	DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error)
	ApplyTemplate(context.Context, *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.ApplyTemplateResponse], error)
}

// NewListServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewListServiceHandler(svc ListServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(ListServiceName, map[string]http.Handler{
		ListServiceCreateListProcedure:    connect.NewUnaryHandler(ListServiceCreateListProcedure, svc.CreateList, opts...),
		ListServiceGetListProcedure:       connect.NewUnaryHandler(ListServiceGetListProcedure, svc.GetList, opts...),
		ListServiceListListsProcedure:     connect.NewUnaryHandler(ListServiceListListsProcedure, svc.ListLists, opts...),
		ListServiceUpdateListProcedure:    connect.NewUnaryHandler(ListServiceUpdateListProcedure, svc.UpdateList, opts...),
		ListServiceDeleteListProcedure:    connect.NewUnaryHandler(ListServiceDeleteListProcedure, svc.DeleteList, opts...),
		ListServiceApplyTemplateProcedure: connect.NewUnaryHandler(ListServiceApplyTemplateProcedure, svc.ApplyTemplate, opts...),
	})
}

// UnimplementedListServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedListServiceHandler struct{}

func (UnimplementedListServiceHandler) CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	return nil, unimplemented(ListServiceCreateListProcedure)
}

func (UnimplementedListServiceHandler) GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	return nil, unimplemented(ListServiceGetListProcedure)
}

func (UnimplementedListServiceHandler) ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	return nil, unimplemented(ListServiceListListsProcedure)
}

func (UnimplementedListServiceHandler) UpdateList(context.Context, *connect.Request[api.UpdateListRequest]) (*connect.Response[api.UpdateListResponse], error) {
	return nil, unimplemented(ListServiceUpdateListProcedure)
}

func (UnimplementedListServiceHandler) DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	return nil, unimplemented(ListServiceDeleteListProcedure)
}

func (UnimplementedListServiceHandler) ApplyTemplate(context.Context, *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.ApplyTemplateResponse], error) {
	return nil, unimplemented(ListServiceApplyTemplateProcedure)
}
