package handler

import (
	"context"
	"net/http"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

type AuthHandler struct {
	userService service.UserService
}

func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Endpoint() *Endpoint {
	return NewEndpoint("auth", "GET, POST, PUT, OPTIONS", map[string]httputils.GatewayFunc{
		http.MethodPost: h.post,
		http.MethodPut:  h.updateProfile,
	})
}

type AuthRequest struct {
	Action       string `json:"action" example:"login"`
	Phone        string `json:"phone" example:"+10000000001"`
	Password     string `json:"password" example:"p1"`
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	Avatar       string `json:"avatar"`
	PhoneContact string `json:"phone_contact"`
}

type UpdateProfileRequest struct {
	UserID uint    `json:"user_id"`
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// @Summary Auth
// @Description Вход, регистрация и заполнение профиля. Поле action: login, register, complete_profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthRequest true "Auth data"
// @Success 200 {object} model.Session
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 403 {object} httputils.ErrorResponse
// @Failure 409 {object} httputils.ErrorResponse
// @Failure 405 {object} httputils.ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) post(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request AuthRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	switch request.Action {
	case "login":
		user, err := h.userService.Login(ctx, request.Phone, request.Password)
		if err != nil {
			return errorResponse("auth", err)
		}
		return httputils.ResponseJSON(http.StatusOK, user.Session())

	case "register":
		user, err := h.userService.Register(ctx, request.Phone, request.Password)
		if err != nil {
			return errorResponse("auth", err)
		}
		return httputils.ResponseJSON(http.StatusOK, user.Registration())

	case "complete_profile":
		user, err := h.userService.CompleteProfile(ctx, service.CompleteProfileInput{
			UserID:       request.UserID,
			Name:         request.Name,
			Bio:          request.Bio,
			Avatar:       request.Avatar,
			PhoneContact: request.PhoneContact,
		})
		if err != nil {
			return errorResponse("auth", err)
		}
		return httputils.ResponseJSON(http.StatusOK, user.Profile())
	}

	return methodNotAllowed()
}

// @Summary Update profile
// @Description Перезаписывает имя, био и аватар; null очищает поле
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} model.Profile
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Router /auth [put]
func (h *AuthHandler) updateProfile(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request UpdateProfileRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	user, err := h.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID: request.UserID,
		Name:   request.Name,
		Bio:    request.Bio,
		Avatar: request.Avatar,
	})
	if err != nil {
		return errorResponse("auth", err)
	}

	return httputils.ResponseJSON(http.StatusOK, user.Profile())
}
