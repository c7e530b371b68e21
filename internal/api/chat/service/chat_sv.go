package chatService

import (
	"SimpleChatbot/internal/api/chat"
	"SimpleChatbot/internal/entity"
	contextPkg "SimpleChatbot/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *chatService) ProcessMessage(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Message == "" {
		return nil, chat.ErrMessageRequired
	}

	reply := s.generator.Generate(req.Message)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     reply.Intent,
		"keywords":   reply.Keywords,
	}).Debug("Generated chat reply")

	now := s.now()
	timestamp := s.utils.FormatClock(now)

	userTurn, err := s.newTurn(entity.RoleUser, req.Message, timestamp, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate turn ID")
		return nil, chat.ErrProcessMessage
	}

	assistantTurn, err := s.newTurn(entity.RoleAssistant, reply.Text, timestamp, now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate turn ID")
		return nil, chat.ErrProcessMessage
	}

	// nothing is stored once the request deadline has passed
	if err := ctx.Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request expired before storing turns")
		return nil, chat.ErrProcessMessage
	}

	if err := s.chatRepo.AppendPair(ctx, userTurn, assistantTurn); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to append conversation turns")
		return nil, chat.ErrProcessMessage
	}

	return &chat.ChatResponse{
		Response:  reply.Text,
		Timestamp: timestamp,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context) ([]entity.ChatTurn, error) {
	requestID := contextPkg.GetRequestID(ctx)

	turns, err := s.chatRepo.List(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load conversation history")
		return nil, chat.ErrLoadHistory
	}

	return turns, nil
}

func (s *chatService) newTurn(role entity.Role, content string, timestamp string, at time.Time) (entity.ChatTurn, error) {
	id, err := s.utils.NewULIDFromTimestamp(at)
	if err != nil {
		return entity.ChatTurn{}, err
	}

	return entity.ChatTurn{
		ID:        id,
		Role:      role,
		Content:   content,
		Timestamp: timestamp,
	}, nil
}
