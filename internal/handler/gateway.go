package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

const (
	msgMethodNotAllowed   = "Method not allowed"
	msgInvalidFormat      = "Invalid request format"
	msgInvalidCredentials = "Неверный логин или пароль"
	msgUserBlocked        = "Пользователь заблокирован"
	msgUserNotFound       = "Пользователь не найден"
	msgPhoneTaken         = "Пользователь с таким номером уже существует"
	msgStorageDisabled    = "Avatar storage is not configured"
	msgInternal           = "Internal server error"
)

// Endpoint is one capability: CORS preflight, a handler per HTTP method and
// 405 for the rest.
type Endpoint struct {
	name    string
	methods string
	routes  map[string]httputils.GatewayFunc
}

func NewEndpoint(name, allowMethods string, routes map[string]httputils.GatewayFunc) *Endpoint {
	return &Endpoint{name: name, methods: allowMethods, routes: routes}
}

func (e *Endpoint) Name() string {
	return e.name
}

// Handle never touches a service for OPTIONS. An empty method counts as GET.
func (e *Endpoint) Handle(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	method := strings.ToUpper(req.HTTPMethod)
	if method == http.MethodOptions {
		return httputils.Preflight(e.methods)
	}
	if method == "" {
		method = http.MethodGet
	}

	route, ok := e.routes[method]
	if !ok {
		return methodNotAllowed()
	}
	return route(ctx, req)
}

// Gateway groups every capability the service exposes.
type Gateway struct {
	Auth     *Endpoint
	Users    *Endpoint
	Contacts *Endpoint
	Messages *Endpoint
	Avatars  *Endpoint
}

func NewGateway(userService service.UserService, contactService service.ContactService, messageService service.MessageService, avatarService service.AvatarService) *Gateway {
	return &Gateway{
		Auth:     NewAuthHandler(userService).Endpoint(),
		Users:    NewUsersHandler(userService).Endpoint(),
		Contacts: NewContactHandler(contactService).Endpoint(),
		Messages: NewMessageHandler(messageService).Endpoint(),
		Avatars:  NewAvatarHandler(avatarService).Endpoint(),
	}
}

// Endpoints indexes the capabilities by name.
func (g *Gateway) Endpoints() map[string]*Endpoint {
	endpoints := map[string]*Endpoint{}
	for _, e := range []*Endpoint{g.Auth, g.Users, g.Contacts, g.Messages, g.Avatars} {
		if e != nil {
			endpoints[e.name] = e
		}
	}
	return endpoints
}

func methodNotAllowed() events.APIGatewayProxyResponse {
	return httputils.ResponseError(http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

func invalidFormat() events.APIGatewayProxyResponse {
	return httputils.ResponseError(http.StatusBadRequest, msgInvalidFormat)
}

// errorResponse maps service errors onto HTTP statuses.
func errorResponse(capability string, err error) events.APIGatewayProxyResponse {
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return httputils.ResponseError(http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return httputils.ResponseError(http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, service.ErrUserBlocked):
		return httputils.ResponseError(http.StatusForbidden, msgUserBlocked)
	case errors.Is(err, service.ErrUserNotFound):
		return httputils.ResponseError(http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrPhoneTaken):
		return httputils.ResponseError(http.StatusConflict, msgPhoneTaken)
	case errors.Is(err, service.ErrStorageDisabled):
		return httputils.ResponseError(http.StatusServiceUnavailable, msgStorageDisabled)
	default:
		log.Printf("%s: %v", capability, err)
		return httputils.ResponseError(http.StatusInternalServerError, msgInternal)
	}
}

// queryID reads a positive integer id from the query string.
func queryID(req events.APIGatewayProxyRequest, name string) (uint, error) {
	raw := req.QueryStringParameters[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &service.FieldError{Field: name}
	}
	return uint(id), nil
}
