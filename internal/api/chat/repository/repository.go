package chatRepository

import (
	"SimpleChatbot/internal/entity"
	"context"
	"fmt"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Repository stores the conversation as an append-only list. AppendPair must
// store both turns adjacently or not at all.
type Repository interface {
	AppendPair(ctx context.Context, user entity.ChatTurn, assistant entity.ChatTurn) error
	List(ctx context.Context) ([]entity.ChatTurn, error)
}

func ValidateBackend(backend string) error {
	switch strings.ToLower(backend) {
	case BackendMemory, BackendRedis:
		return nil
	default:
		return fmt.Errorf("unknown history backend %q", backend)
	}
}
