package handler

import (
	"context"
	"net/http"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

type UsersHandler struct {
	userService service.UserService
}

func NewUsersHandler(userService service.UserService) *UsersHandler {
	return &UsersHandler{userService: userService}
}

func (h *UsersHandler) Endpoint() *Endpoint {
	return NewEndpoint("users", "GET, POST, PUT, OPTIONS", map[string]httputils.GatewayFunc{
		http.MethodGet:  h.get,
		http.MethodPost: h.createUser,
		http.MethodPut:  h.setBlocked,
	})
}

type CreateUserRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SetBlockedRequest struct {
	UserID    uint  `json:"user_id"`
	IsBlocked *bool `json:"is_blocked"`
}

// @Summary Users
// @Description action=search ищет заполненный профиль по телефону, action=all возвращает всех пользователей
// @Tags users
// @Produce json
// @Param action query string true "search или all"
// @Param phone query string false "Телефон для поиска"
// @Success 200 {object} model.PublicProfile
// @Success 200 {array} model.AdminUser
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 405 {object} httputils.ErrorResponse
// @Router /users [get]
func (h *UsersHandler) get(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	switch req.QueryStringParameters["action"] {
	case "search":
		profile, err := h.userService.Search(ctx, req.QueryStringParameters["phone"])
		if err != nil {
			return errorResponse("users", err)
		}
		return httputils.ResponseJSON(http.StatusOK, profile)

	case "all":
		users, err := h.userService.ListAll(ctx)
		if err != nil {
			return errorResponse("users", err)
		}
		list := make([]model.AdminUser, 0, len(users))
		for i := range users {
			list = append(list, users[i].AdminUser())
		}
		return httputils.ResponseJSON(http.StatusOK, list)
	}

	return methodNotAllowed()
}

// @Summary Create user
// @Description Создает пользователя с уже заполненным профилем
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User data"
// @Success 200 {object} model.AccountStatus
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 409 {object} httputils.ErrorResponse
// @Router /users [post]
func (h *UsersHandler) createUser(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request CreateUserRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	user, err := h.userService.Create(ctx, request.Phone, request.Password, request.Name)
	if err != nil {
		return errorResponse("users", err)
	}

	return httputils.ResponseJSON(http.StatusOK, user.AccountStatus())
}

// @Summary Block user
// @Description Блокирует или разблокирует пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param request body SetBlockedRequest true "Block flag"
// @Success 200 {object} model.AccountStatus
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Router /users [put]
func (h *UsersHandler) setBlocked(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request SetBlockedRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}
	if request.IsBlocked == nil {
		return errorResponse("users", &service.FieldError{Field: "is_blocked"})
	}

	user, err := h.userService.SetBlocked(ctx, request.UserID, *request.IsBlocked)
	if err != nil {
		return errorResponse("users", err)
	}

	return httputils.ResponseJSON(http.StatusOK, user.AccountStatus())
}
