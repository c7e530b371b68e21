package chatRepository

import (
	"SimpleChatbot/internal/entity"
	contextPkg "SimpleChatbot/pkg/context"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type memoryRepository struct {
	mu    sync.RWMutex
	turns []entity.ChatTurn
	log   *logrus.Logger
}

// NewMemory keeps the history in process memory; it is lost on restart.
func NewMemory(log *logrus.Logger) Repository {
	return &memoryRepository{
		turns: make([]entity.ChatTurn, 0, 64),
		log:   log,
	}
}

func (r *memoryRepository) AppendPair(ctx context.Context, user entity.ChatTurn, assistant entity.ChatTurn) error {
	r.mu.Lock()
	r.turns = append(r.turns, user, assistant)
	total := len(r.turns)
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"total":      total,
	}).Debug("Appended turns to memory history")

	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]entity.ChatTurn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	turns := make([]entity.ChatTurn, len(r.turns))
	copy(turns, r.turns)
	return turns, nil
}
