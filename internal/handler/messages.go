package handler

import (
	"context"
	"net/http"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Endpoint() *Endpoint {
	return NewEndpoint("messages", "GET, POST, PUT, OPTIONS", map[string]httputils.GatewayFunc{
		http.MethodGet:  h.history,
		http.MethodPost: h.sendMessage,
	})
}

type SendMessageRequest struct {
	SenderID   uint   `json:"sender_id"`
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

// @Summary Conversation
// @Description Все сообщения между двумя пользователями, старые первыми
// @Tags messages
// @Produce json
// @Param user_id query int true "User ID"
// @Param contact_id query int true "Contact ID"
// @Success 200 {array} model.ConversationMessage
// @Failure 400 {object} httputils.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) history(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, err := queryID(req, "user_id")
	if err != nil {
		return errorResponse("messages", err)
	}
	contactID, err := queryID(req, "contact_id")
	if err != nil {
		return errorResponse("messages", err)
	}

	messages, err := h.messageService.History(ctx, userID, contactID)
	if err != nil {
		return errorResponse("messages", err)
	}

	return httputils.ResponseJSON(http.StatusOK, messages)
}

// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 200 {object} model.SentMessage
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) sendMessage(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request SendMessageRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	msg, err := h.messageService.Send(ctx, request.SenderID, request.ReceiverID, request.Content)
	if err != nil {
		return errorResponse("messages", err)
	}

	return httputils.ResponseJSON(http.StatusOK, msg.Sent())
}
