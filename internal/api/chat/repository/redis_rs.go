package chatRepository

import (
	"SimpleChatbot/internal/entity"
	contextPkg "SimpleChatbot/pkg/context"
	"SimpleChatbot/pkg/redis"
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const DefaultRedisKey = "chatbot:history"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type redisRepository struct {
	client redis.IRedis
	key    string
	log    *logrus.Logger
}

// NewRedis stores each turn as a JSON element of a Redis list under key.
func NewRedis(client redis.IRedis, key string, log *logrus.Logger) Repository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisRepository{
		client: client,
		key:    key,
		log:    log,
	}
}

// AppendPair pushes both turns with a single RPUSH, which Redis applies atomically.
func (r *redisRepository) AppendPair(ctx context.Context, user entity.ChatTurn, assistant entity.ChatTurn) error {
	requestID := contextPkg.GetRequestID(ctx)

	userRaw, err := json.MarshalToString(user)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode user turn")
		return err
	}

	assistantRaw, err := json.MarshalToString(assistant)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode assistant turn")
		return err
	}

	if _, err := r.client.RPush(ctx, r.key, userRaw, assistantRaw); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        r.key,
			"error":      err.Error(),
		}).Error("Failed to append turns to redis history")
		return err
	}

	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]entity.ChatTurn, error) {
	requestID := contextPkg.GetRequestID(ctx)

	values, err := r.client.LRange(ctx, r.key, 0, -1)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        r.key,
			"error":      err.Error(),
		}).Error("Failed to read redis history")
		return nil, err
	}

	turns := make([]entity.ChatTurn, 0, len(values))
	for _, raw := range values {
		var turn entity.ChatTurn
		if err := json.UnmarshalFromString(raw, &turn); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        r.key,
				"error":      err.Error(),
			}).Error("Failed to decode turn from redis history")
			return nil, err
		}
		turns = append(turns, turn)
	}

	return turns, nil
}
