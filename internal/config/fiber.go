package config

import (
	"SimpleChatbot/pkg/handlerUtil"
	"SimpleChatbot/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// NewViews builds the html engine over the embedded templates.
func NewViews(debug bool) *html.Engine {
	engine := html.NewFileSystem(web.Views(), ".html")
	engine.Reload(debug)
	return engine
}

func NewFiber(logger *logrus.Logger, debug bool) *fiber.App {
	errHandler := handlerUtil.New(logger)

	app := fiber.New(
		fiber.Config{
			AppName:           "Simple Chatbot",
			BodyLimit:         1 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: debug,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			Views:             NewViews(debug),
			ErrorHandler:      errHandler.FiberErrorHandler,
		})

	app.Use(recover.New(recover.Config{EnableStackTrace: debug}))

	return app
}

// MountStatic serves the embedded browser assets under /static. It must run
// after the request id and logging middlewares are registered.
func MountStatic(app *fiber.App) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		Browse: false,
	}))
}
