package main

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewApp(config Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      config.Prefork,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger)
	app.Use(cors.New(cors.Config{AllowOrigins: config.Cors.AllowOrigins}))
	app.Use(Transactional(db))

	app.Get("/", Sitemap)
	entityRoutes(app)
	favoriteRoutes(app)

	return app
}
