package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/pkg/api"
)

// PersonalizationServiceName is the fully-qualified name of the PersonalizationService service.
const PersonalizationServiceName = "shoplist.v1.PersonalizationService"

const (
	PersonalizationServiceGetPersonalizationProcedure  = "/shoplist.v1.PersonalizationService/GetPersonalization"
	PersonalizationServiceSavePersonalizationProcedure = "/shoplist.v1.PersonalizationService/SavePersonalization"
)

// PersonalizationServiceClient is a client for the shoplist.v1.PersonalizationService service.
type PersonalizationServiceClient interface {
	GetPersonalization(context.Context, *connect.Request[api.GetPersonalizationRequest]) (*connect.Response[api.GetPersonalizationResponse], error)
	SavePersonalization(context.Context, *connect.Request[api.SavePersonalizationRequest]) (*connect.Response[api.SavePersonalizationResponse], error)
}

// NewPersonalizationServiceClient constructs a client for the shoplist.v1.PersonalizationService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewPersonalizationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PersonalizationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &personalizationServiceClient{
		getPersonalization:  connect.NewClient[api.GetPersonalizationRequest, api.GetPersonalizationResponse](httpClient, baseURL+PersonalizationServiceGetPersonalizationProcedure, opts...),
		savePersonalization: connect.NewClient[api.SavePersonalizationRequest, api.SavePersonalizationResponse](httpClient, baseURL+PersonalizationServiceSavePersonalizationProcedure, opts...),
	}
}

type personalizationServiceClient struct {
	getPersonalization  *connect.Client[api.GetPersonalizationRequest, api.GetPersonalizationResponse]
	savePersonalization *connect.Client[api.SavePersonalizationRequest, api.SavePersonalizationResponse]
}

func (c *personalizationServiceClient) GetPersonalization(ctx context.Context, req *connect.Request[api.GetPersonalizationRequest]) (*connect.Response[api.GetPersonalizationResponse], error) {
	return c.getPersonalization.CallUnary(ctx, req)
}

func (c *personalizationServiceClient) SavePersonalization(ctx context.Context, req *connect.Request[api.SavePersonalizationRequest]) (*connect.Response[api.SavePersonalizationResponse], error) {
	return c.savePersonalization.CallUnary(ctx, req)
}

// PersonalizationServiceHandler is implemented by the server side of shoplist.v1.PersonalizationService.
// PersonalizationService reads and saves the caller's categories, templates and name map.
type PersonalizationServiceHandler interface {
	GetPersonalization(context.Context, *connect.Request[api.GetPersonalizationRequest]) (*connect.Response[api.GetPersonalizationResponse], error)
	SavePersonalization(context.Context, *connect.Request[api.SavePersonalizationRequest]) (*connect.Response[api.SavePersonalizationResponse], error)
}

// NewPersonalizationServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPersonalizationServiceHandler(svc PersonalizationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(PersonalizationServiceName, map[string]http.Handler{
		PersonalizationServiceGetPersonalizationProcedure:  connect.NewUnaryHandler(PersonalizationServiceGetPersonalizationProcedure, svc.GetPersonalization, opts...),
		PersonalizationServiceSavePersonalizationProcedure: connect.NewUnaryHandler(PersonalizationServiceSavePersonalizationProcedure, svc.SavePersonalization, opts...),
	})
}

// UnimplementedPersonalizationServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPersonalizationServiceHandler struct{}

func (UnimplementedPersonalizationServiceHandler) GetPersonalization(context.Context, *connect.Request[api.GetPersonalizationRequest]) (*connect.Response[api.GetPersonalizationResponse], error) {
	return nil, unimplemented(PersonalizationServiceGetPersonalizationProcedure)
}

func (UnimplementedPersonalizationServiceHandler) SavePersonalization(context.Context, *connect.Request[api.SavePersonalizationRequest]) (*connect.Response[api.SavePersonalizationResponse], error) {
	return nil, unimplemented(PersonalizationServiceSavePersonalizationProcedure)
}
