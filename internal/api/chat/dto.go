package chat

import "SimpleChatbot/internal/entity"

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type HistoryResponse struct {
	History []entity.ChatTurn `json:"history"`
	Total   int               `json:"total"`
}

type HomePage struct {
	Title   string
	History []entity.ChatTurn
}
