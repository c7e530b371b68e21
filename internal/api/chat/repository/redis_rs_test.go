package chatRepository

import (
	"SimpleChatbot/pkg/log"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	lists     map[string][]string
	pushCalls int
	pushErr   error
	rangeErr  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: make(map[string][]string)}
}

func (f *fakeRedis) RPush(_ context.Context, key string, values ...string) (int64, error) {
	f.pushCalls++
	if f.pushErr != nil {
		return 0, f.pushErr
	}
	f.lists[key] = append(f.lists[key], values...)
	return int64(len(f.lists[key])), nil
}

func (f *fakeRedis) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	values := f.lists[key]
	if start != 0 || stop != -1 {
		return nil, errors.New("fake only supports full ranges")
	}
	return append([]string(nil), values...), nil
}

func (f *fakeRedis) Ping(context.Context) error { return nil }
func (f *fakeRedis) Close() error               { return nil }

func TestRedisRepository_AppendPairUsesSinglePush(t *testing.T) {
	client := newFakeRedis()
	repo := NewRedis(client, "", log.NewDiscardLogger())
	ctx := context.Background()

	user, assistant := turnPair(1)
	require.NoError(t, repo.AppendPair(ctx, user, assistant))

	assert.Equal(t, 1, client.pushCalls)
	require.Len(t, client.lists[DefaultRedisKey], 2)
	assert.JSONEq(t, `{"id":"u1","role":"user","content":"q1","timestamp":"10:00"}`, client.lists[DefaultRedisKey][0])
	assert.JSONEq(t, `{"id":"a1","role":"assistant","content":"r1","timestamp":"10:00"}`, client.lists[DefaultRedisKey][1])
}

func TestRedisRepository_ListDecodesInOrder(t *testing.T) {
	client := newFakeRedis()
	repo := NewRedis(client, "test:history", log.NewDiscardLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		user, assistant := turnPair(i)
		require.NoError(t, repo.AppendPair(ctx, user, assistant))
	}

	turns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, turns, 4)

	u0, a0 := turnPair(0)
	u1, a1 := turnPair(1)
	assert.Equal(t, u0, turns[0])
	assert.Equal(t, a0, turns[1])
	assert.Equal(t, u1, turns[2])
	assert.Equal(t, a1, turns[3])
}

func TestRedisRepository_Errors(t *testing.T) {
	ctx := context.Background()
	user, assistant := turnPair(0)

	client := newFakeRedis()
	client.pushErr = errors.New("connection refused")
	repo := NewRedis(client, "", log.NewDiscardLogger())
	require.Error(t, repo.AppendPair(ctx, user, assistant))

	client = newFakeRedis()
	client.rangeErr = errors.New("connection refused")
	repo = NewRedis(client, "", log.NewDiscardLogger())
	_, err := repo.List(ctx)
	require.Error(t, err)

	client = newFakeRedis()
	client.lists[DefaultRedisKey] = []string{"not-json"}
	repo = NewRedis(client, "", log.NewDiscardLogger())
	_, err = repo.List(ctx)
	require.Error(t, err)
}
