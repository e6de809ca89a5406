package handler

import (
	"net/http"

	"tush00nka/phonebook_messenger/internal/pkg/httputils"
)

type PongResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Пингануть сервер
// @Description Пингануть сервер
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.WriteJSON(w, http.StatusOK, PongResponse{Message: "Pong"})
}
