package handler

import (
	"context"
	"net/http"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Endpoint() *Endpoint {
	return NewEndpoint("contacts", "GET, POST, OPTIONS", map[string]httputils.GatewayFunc{
		http.MethodGet:  h.listContacts,
		http.MethodPost: h.addContact,
	})
}

type AddContactRequest struct {
	UserID    uint `json:"user_id"`
	ContactID uint `json:"contact_id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// @Summary List contacts
// @Description Контакты пользователя с последним сообщением, недавние первыми
// @Tags contacts
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} model.ContactEntry
// @Failure 400 {object} httputils.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) listContacts(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, err := queryID(req, "user_id")
	if err != nil {
		return errorResponse("contacts", err)
	}

	contacts, err := h.contactService.List(ctx, userID)
	if err != nil {
		return errorResponse("contacts", err)
	}

	return httputils.ResponseJSON(http.StatusOK, contacts)
}

// @Summary Add contact
// @Description Повторное добавление ничего не меняет
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body AddContactRequest true "Contact pair"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) addContact(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request AddContactRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	if err := h.contactService.Add(ctx, request.UserID, request.ContactID); err != nil {
		return errorResponse("contacts", err)
	}

	return httputils.ResponseJSON(http.StatusOK, SuccessResponse{Success: true})
}
