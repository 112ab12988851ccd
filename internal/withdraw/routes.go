package withdraw

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tg-casino/internal/player"
)

// RegisterRoutes wires the player-facing request endpoint.
func RegisterRoutes(r fiber.Router, svc *Service) {

	r.Post("/withdraw/request", func(c *fiber.Ctx) error {
		var req struct {
			TelegramID string `json:"telegram_id"`
			Amount     int64  `json:"amount"`
			Address    string `json:"address"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		id, err := svc.Request(c.Context(), req.TelegramID, req.Amount, req.Address)
		switch {
		case errors.Is(err, ErrInvalidAmount):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, player.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		case errors.Is(err, player.ErrInsufficientFunds):
			return c.Status(402).JSON(fiber.Map{"error": "insufficient funds"})
		case err != nil:
			return c.Status(500).JSON(fiber.Map{"error": "withdraw failed"})
		}
		return c.JSON(fiber.Map{"id": id, "status": StatusPending})
	})
}

// RegisterAdminRoutes wires the review queue, mounted behind the admin guard.
func RegisterAdminRoutes(r fiber.Router, svc *Service) {

	r.Get("/withdraw/pending", func(c *fiber.Ctx) error {
		reqs, err := svc.Pending(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "queue unavailable"})
		}
		return c.JSON(fiber.Map{"pending": reqs})
	})

	r.Post("/withdraw/approve/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad id"})
		}
		return decided(c, svc.Approve(c.Context(), int64(id)), StatusApproved)
	})

	r.Post("/withdraw/reject/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad id"})
		}
		return decided(c, svc.Reject(c.Context(), int64(id)), StatusRejected)
	})
}

func decided(c *fiber.Ctx, err error, status string) error {
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"status": status})
	case errors.Is(err, ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, ErrNotPending):
		return c.Status(409).JSON(fiber.Map{"error": "already decided"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "decision failed"})
	}
}
