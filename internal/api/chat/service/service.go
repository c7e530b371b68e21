package chatService

import (
	"SimpleChatbot/internal/api/chat"
	chatRepository "SimpleChatbot/internal/api/chat/repository"
	"SimpleChatbot/internal/entity"
	"SimpleChatbot/pkg/nlp"
	"SimpleChatbot/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error)
	GetHistory(ctx context.Context) ([]entity.ChatTurn, error)
}

type chatService struct {
	log       *logrus.Logger
	chatRepo  chatRepository.Repository
	generator nlp.IGenerator
	utils     utils.IUtils
	now       func() time.Time
}

func NewChatService(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	generator nlp.IGenerator,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:       log,
		chatRepo:  chatRepo,
		generator: generator,
		utils:     utils,
		now:       time.Now,
	}
}
