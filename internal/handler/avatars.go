package handler

import (
	"context"
	"net/http"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
	"tush00nka/phonebook_messenger/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

type AvatarHandler struct {
	avatarService service.AvatarService
}

func NewAvatarHandler(avatarService service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatarService: avatarService}
}

func (h *AvatarHandler) Endpoint() *Endpoint {
	return NewEndpoint("avatars", "POST, OPTIONS", map[string]httputils.GatewayFunc{
		http.MethodPost: h.upload,
	})
}

// UploadAvatarRequest carries the image as base64 in Data.
type UploadAvatarRequest struct {
	UserID      uint   `json:"user_id"`
	ContentType string `json:"content_type" example:"image/png"`
	Data        []byte `json:"data" swaggertype:"string" format:"base64"`
}

// @Summary Upload avatar
// @Description Загружает картинку в S3 и возвращает ссылку для complete_profile / update_profile
// @Tags avatars
// @Accept json
// @Produce json
// @Param request body UploadAvatarRequest true "Avatar"
// @Success 200 {object} model.AvatarUpload
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.ErrorResponse
// @Failure 503 {object} httputils.ErrorResponse
// @Router /avatars [post]
func (h *AvatarHandler) upload(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var request UploadAvatarRequest
	if err := httputils.DecodeBody(req, &request); err != nil {
		return invalidFormat()
	}

	upload, err := h.avatarService.Upload(ctx, service.AvatarInput{
		UserID:      request.UserID,
		ContentType: request.ContentType,
		Data:        request.Data,
	})
	if err != nil {
		return errorResponse("avatars", err)
	}

	return httputils.ResponseJSON(http.StatusOK, upload)
}
