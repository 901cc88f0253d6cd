package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"clau-backend/internal/models"
)

// chatService is the slice of the chat service the handler depends on.
type chatService interface {
	Ask(ctx context.Context, contents []models.Turn) (string, error)
}

type ChatHandler struct {
	chatService chatService
}

func NewChatHandler(chatService chatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Ask accepts a conversation history and returns the advisor's reply.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	answer, err := h.chatService.Ask(r.Context(), req.Contents)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AskResponse{Answer: answer})
}
