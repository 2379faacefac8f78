package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/pkg/api"
)

// ItemServiceName is the fully-qualified name of the ItemService service.
const ItemServiceName = "shoplist.v1.ItemService"

const (
	ItemServiceListItemsProcedure       = "/shoplist.v1.ItemService/ListItems"
	ItemServiceCreateItemProcedure      = "/shoplist.v1.ItemService/CreateItem"
	ItemServiceUpdateItemProcedure      = "/shoplist.v1.ItemService/UpdateItem"
	ItemServiceDeleteItemProcedure      = "/shoplist.v1.ItemService/DeleteItem"
	ItemServiceBulkCompleteProcedure    = "/shoplist.v1.ItemService/BulkComplete"
	ItemServiceBulkDeleteProcedure      = "/shoplist.v1.ItemService/BulkDelete"
	ItemServiceMoveItemProcedure        = "/shoplist.v1.ItemService/MoveItem"
	ItemServiceMoveCategoryProcedure    = "/shoplist.v1.ItemService/MoveCategory"
	ItemServiceSuggestCategoryProcedure = "/shoplist.v1.ItemService/SuggestCategory"
)

// ItemServiceClient is a client for the shoplist.v1.ItemService service.
type ItemServiceClient interface {
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	BulkComplete(context.Context, *connect.Request[api.BulkCompleteRequest]) (*connect.Response[api.BulkCompleteResponse], error)
	BulkDelete(context.Context, *connect.Request[api.BulkDeleteRequest]) (*connect.Response[api.BulkDeleteResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	MoveCategory(context.Context, *connect.Request[api.MoveCategoryRequest]) (*connect.Response[api.MoveCategoryResponse], error)
	SuggestCategory(context.Context, *connect.Request[api.SuggestCategoryRequest]) (*connect.Response[api.SuggestCategoryResponse], error)
}

// NewItemServiceClient constructs a client for the shoplist.v1.ItemService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewItemServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ItemServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &itemServiceClient{
		listItems:       connect.NewClient[api.ListItemsRequest, api.ListItemsResponse](httpClient, baseURL+ItemServiceListItemsProcedure, opts...),
		createItem:      connect.NewClient[api.CreateItemRequest, api.CreateItemResponse](httpClient, baseURL+ItemServiceCreateItemProcedure, opts...),
		updateItem:      connect.NewClient[api.UpdateItemRequest, api.UpdateItemResponse](httpClient, baseURL+ItemServiceUpdateItemProcedure, opts...),
		deleteItem:      connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](httpClient, baseURL+ItemServiceDeleteItemProcedure, opts...),
		bulkComplete:    connect.NewClient[api.BulkCompleteRequest, api.BulkCompleteResponse](httpClient, baseURL+ItemServiceBulkCompleteProcedure, opts...),
		bulkDelete:      connect.NewClient[api.BulkDeleteRequest, api.BulkDeleteResponse](httpClient, baseURL+ItemServiceBulkDeleteProcedure, opts...),
		moveItem:        connect.NewClient[api.MoveItemRequest, api.MoveItemResponse](httpClient, baseURL+ItemServiceMoveItemProcedure, opts...),
		moveCategory:    connect.NewClient[api.MoveCategoryRequest, api.MoveCategoryResponse](httpClient, baseURL+ItemServiceMoveCategoryProcedure, opts...),
		suggestCategory: connect.NewClient[api.SuggestCategoryRequest, api.SuggestCategoryResponse](httpClient, baseURL+ItemServiceSuggestCategoryProcedure, opts...),
	}
}

type itemServiceClient struct {
	listItems       *connect.Client[api.ListItemsRequest, api.ListItemsResponse]
	createItem      *connect.Client[api.CreateItemRequest, api.CreateItemResponse]
	updateItem      *connect.Client[api.UpdateItemRequest, api.UpdateItemResponse]
	deleteItem      *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	bulkComplete    *connect.Client[api.BulkCompleteRequest, api.BulkCompleteResponse]
	bulkDelete      *connect.Client[api.BulkDeleteRequest, api.BulkDeleteResponse]
	moveItem        *connect.Client[api.MoveItemRequest, api.MoveItemResponse]
	moveCategory    *connect.Client[api.MoveCategoryRequest, api.MoveCategoryResponse]
	suggestCategory *connect.Client[api.SuggestCategoryRequest, api.SuggestCategoryResponse]
}

func (c *itemServiceClient) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

func (c *itemServiceClient) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

func (c *itemServiceClient) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *itemServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

func (c *itemServiceClient) BulkComplete(ctx context.Context, req *connect.Request[api.BulkCompleteRequest]) (*connect.Response[api.BulkCompleteResponse], error) {
	return c.bulkComplete.CallUnary(ctx, req)
}

func (c *itemServiceClient) BulkDelete(ctx context.Context, req *connect.Request[api.BulkDeleteRequest]) (*connect.Response[api.BulkDeleteResponse], error) {
	return c.bulkDelete.CallUnary(ctx, req)
}

func (c *itemServiceClient) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	return c.moveItem.CallUnary(ctx, req)
}

func (c *itemServiceClient) MoveCategory(ctx context.Context, req *connect.Request[api.MoveCategoryRequest]) (*connect.Response[api.MoveCategoryResponse], error) {
	return c.moveCategory.CallUnary(ctx, req)
}

func (c *itemServiceClient) SuggestCategory(ctx context.Context, req *connect.Request[api.SuggestCategoryRequest]) (*connect.Response[api.SuggestCategoryResponse], error) {
	return c.suggestCategory.CallUnary(ctx, req)
}

// ItemServiceHandler is implemented by the server side of shoplist.v1.ItemService.
// ItemService manages the items of a list, their order and category suggestions.
type ItemServiceHandler interface {
	ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	BulkComplete(context.Context, *connect.Request[api.BulkCompleteRequest]) (*connect.Response[api.BulkCompleteResponse], error)
	BulkDelete(context.Context, *connect.Request[api.BulkDeleteRequest]) (*connect.Response[api.BulkDeleteResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	MoveCategory(context.Context, *connect.Request[api.MoveCategoryRequest]) (*connect.Response[api.MoveCategoryResponse], error)
	SuggestCategory(context.Context, *connect.Request[api.SuggestCategoryRequest]) (*connect.Response[api.SuggestCategoryResponse], error)
}

// NewItemServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewItemServiceHandler(svc ItemServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(ItemServiceName, map[string]http.Handler{
		ItemServiceListItemsProcedure:       connect.NewUnaryHandler(ItemServiceListItemsProcedure, svc.ListItems, opts...),
		ItemServiceCreateItemProcedure:      connect.NewUnaryHandler(ItemServiceCreateItemProcedure, svc.CreateItem, opts...),
		ItemServiceUpdateItemProcedure:      connect.NewUnaryHandler(ItemServiceUpdateItemProcedure, svc.UpdateItem, opts...),
		ItemServiceDeleteItemProcedure:      connect.NewUnaryHandler(ItemServiceDeleteItemProcedure, svc.DeleteItem, opts...),
		ItemServiceBulkCompleteProcedure:    connect.NewUnaryHandler(ItemServiceBulkCompleteProcedure, svc.BulkComplete, opts...),
		ItemServiceBulkDeleteProcedure:      connect.NewUnaryHandler(ItemServiceBulkDeleteProcedure, svc.BulkDelete, opts...),
		ItemServiceMoveItemProcedure:        connect.NewUnaryHandler(ItemServiceMoveItemProcedure, svc.MoveItem, opts...),
		ItemServiceMoveCategoryProcedure:    connect.NewUnaryHandler(ItemServiceMoveCategoryProcedure, svc.MoveCategory, opts...),
		ItemServiceSuggestCategoryProcedure: connect.NewUnaryHandler(ItemServiceSuggestCategoryProcedure, svc.SuggestCategory, opts...),
	})
}

// UnimplementedItemServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedItemServiceHandler struct{}

func (UnimplementedItemServiceHandler) ListItems(context.Context, *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	return nil, unimplemented(ItemServiceListItemsProcedure)
}

func (UnimplementedItemServiceHandler) CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	return nil, unimplemented(ItemServiceCreateItemProcedure)
}

func (UnimplementedItemServiceHandler) UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return nil, unimplemented(ItemServiceUpdateItemProcedure)
}

func (UnimplementedItemServiceHandler) DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return nil, unimplemented(ItemServiceDeleteItemProcedure)
}

func (UnimplementedItemServiceHandler) BulkComplete(context.Context, *connect.Request[api.BulkCompleteRequest]) (*connect.Response[api.BulkCompleteResponse], error) {
	return nil, unimplemented(ItemServiceBulkCompleteProcedure)
}

func (UnimplementedItemServiceHandler) BulkDelete(context.Context, *connect.Request[api.BulkDeleteRequest]) (*connect.Response[api.BulkDeleteResponse], error) {
	return nil, unimplemented(ItemServiceBulkDeleteProcedure)
}

func (UnimplementedItemServiceHandler) MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	return nil, unimplemented(ItemServiceMoveItemProcedure)
}

func (UnimplementedItemServiceHandler) MoveCategory(context.Context, *connect.Request[api.MoveCategoryRequest]) (*connect.Response[api.MoveCategoryResponse], error) {
	return nil, unimplemented(ItemServiceMoveCategoryProcedure)
}

func (UnimplementedItemServiceHandler) SuggestCategory(context.Context, *connect.Request[api.SuggestCategoryRequest]) (*connect.Response[api.SuggestCategoryResponse], error) {
	return nil, unimplemented(ItemServiceSuggestCategoryProcedure)
}
