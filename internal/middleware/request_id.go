package middleware

import (
	"SimpleChatbot/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberUtils "github.com/gofiber/fiber/v2/utils"
)

const RequestIDKey = "X-Request-ID"

func newRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		// fiber header values alias the request buffer
		requestID := fiberUtils.CopyString(c.Get(RequestIDKey))

		if requestID == "" {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
