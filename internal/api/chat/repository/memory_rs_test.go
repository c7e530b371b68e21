package chatRepository

import (
	"SimpleChatbot/internal/entity"
	"SimpleChatbot/pkg/log"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turnPair(i int) (entity.ChatTurn, entity.ChatTurn) {
	user := entity.ChatTurn{ID: fmt.Sprintf("u%d", i), Role: entity.RoleUser, Content: fmt.Sprintf("q%d", i), Timestamp: "10:00"}
	assistant := entity.ChatTurn{ID: fmt.Sprintf("a%d", i), Role: entity.RoleAssistant, Content: fmt.Sprintf("r%d", i), Timestamp: "10:00"}
	return user, assistant
}

func TestMemoryRepository_AppendAndList(t *testing.T) {
	repo := NewMemory(log.NewDiscardLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		user, assistant := turnPair(i)
		require.NoError(t, repo.AppendPair(ctx, user, assistant))
	}

	turns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, turns, 6)

	for i := 0; i < 3; i++ {
		assert.Equal(t, fmt.Sprintf("u%d", i), turns[2*i].ID)
		assert.Equal(t, fmt.Sprintf("a%d", i), turns[2*i+1].ID)
	}
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemory(log.NewDiscardLogger())
	ctx := context.Background()

	user, assistant := turnPair(0)
	require.NoError(t, repo.AppendPair(ctx, user, assistant))

	turns, err := repo.List(ctx)
	require.NoError(t, err)
	turns[0].Content = "tampered"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "q0", again[0].Content)
}

func TestMemoryRepository_ConcurrentPairsStayAdjacent(t *testing.T) {
	repo := NewMemory(log.NewDiscardLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, assistant := turnPair(i)
			assert.NoError(t, repo.AppendPair(ctx, user, assistant))
		}(i)
	}
	wg.Wait()

	turns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, turns, 200)

	for i := 0; i < len(turns); i += 2 {
		require.Equal(t, entity.RoleUser, turns[i].Role)
		require.Equal(t, entity.RoleAssistant, turns[i+1].Role)
		require.Equal(t, "u"+turns[i+1].ID[1:], turns[i].ID)
	}
}
