package wallet

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tg-casino/internal/player"
)

func RegisterRoutes(r fiber.Router, svc *Service) {

	r.Post("/wallet/deposit", func(c *fiber.Ctx) error {
		var req struct {
			TelegramID string `json:"telegram_id"`
			Amount     int64  `json:"amount"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		balance, err := svc.Deposit(c.Context(), req.TelegramID, req.Amount)
		if errors.Is(err, ErrInvalidAmount) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, player.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "deposit failed"})
		}
		return c.JSON(fiber.Map{"balance": balance})
	})

	r.Get("/wallet/transactions/:tid", func(c *fiber.Ctx) error {
		txs, err := svc.Transactions(c.Context(), c.Params("tid"), c.QueryInt("limit", 50))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "history unavailable"})
		}
		return c.JSON(fiber.Map{"transactions": txs})
	})
}
