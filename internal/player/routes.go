package player

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, repo Repo) {

	r.Get("/player/:tid", func(c *fiber.Ctx) error {
		p, err := repo.Get(c.Context(), c.Params("tid"))
		if errors.Is(err, ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(p)
	})

	r.Post("/player", func(c *fiber.Ctx) error {
		type Req struct {
			TelegramID string `json:"telegram_id"`
			Username   string `json:"username"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil || body.TelegramID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "telegram_id required"})
		}
		p, err := repo.Create(c.Context(), body.TelegramID, body.Username)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.Status(201).JSON(p)
	})

	r.Get("/player/:tid/balance", func(c *fiber.Ctx) error {
		p, err := repo.Get(c.Context(), c.Params("tid"))
		if errors.Is(err, ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(fiber.Map{"balance": p.Balance})
	})
}
