package config

import (
	chatHandler "SimpleChatbot/internal/api/chat/handler"
	chatRepository "SimpleChatbot/internal/api/chat/repository"
	chatService "SimpleChatbot/internal/api/chat/service"
	"SimpleChatbot/internal/middleware"
	"SimpleChatbot/pkg/nlp"
	"SimpleChatbot/pkg/redis"
	"SimpleChatbot/pkg/utils"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	cfg         *AppConfig
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	generator   nlp.IGenerator
	historyRepo chatRepository.Repository
	redisClient redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.generator == nil {
		return nil, fmt.Errorf("response generator is required")
	}
	if server.historyRepo == nil {
		return nil, fmt.Errorf("history repository is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.cfg.RateLimit)
		return nil
	}
}

// WithGenerator builds the response generator from the configured keyword
// strategy and template file.
func WithGenerator() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before generator")
		}

		extractor, err := nlp.NewKeywordExtractor(s.cfg.KeywordStrategy)
		if err != nil {
			return err
		}

		options := []nlp.GeneratorOption{
			nlp.WithKeywordExtractor(extractor),
			nlp.WithGeneratorLogger(s.log),
		}

		if s.cfg.TemplatesPath != "" {
			templates, err := nlp.LoadTemplates(s.cfg.TemplatesPath)
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to load response templates: %v", err)
				}
				return fmt.Errorf("failed to load response templates: %w", err)
			}
			options = append(options, nlp.WithTemplates(templates))
		}

		generator, err := nlp.NewGenerator(options...)
		if err != nil {
			return err
		}

		if s.log != nil {
			s.log.Infof("Keyword strategy: %s", generator.ExtractorName())
		}
		s.generator = generator
		return nil
	}
}

func WithHistoryRepository() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be initialized before history repository")
		}

		switch s.cfg.HistoryBackend {
		case chatRepository.BackendRedis:
			client, err := redis.New(s.cfg.Redis, s.log)
			if err != nil {
				return fmt.Errorf("failed to create redis client: %w", err)
			}
			s.redisClient = client
			s.historyRepo = chatRepository.NewRedis(client, s.cfg.HistoryRedisKey, s.log)
		default:
			s.historyRepo = chatRepository.NewMemory(s.log)
		}

		return nil
	}
}

func (s *Server) RegisterHandler() {
	chatServices := chatService.NewChatService(s.log, s.historyRepo, s.generator, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	MountStatic(s.engine)

	s.handlers = append(s.handlers, chatHandlers)
	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Listen(s.cfg.Addr())
}

func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			s.log.Errorf("Failed to close Redis client: %v", closeErr)
		}
	}

	return err
}
