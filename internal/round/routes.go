package round

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tg-casino/internal/games"
	"tg-casino/internal/player"
)

// statusFor maps the round error taxonomy onto HTTP statuses. Everything in
// the taxonomy is client-correctable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, player.ErrInsufficientFunds):
		return fiber.StatusPaymentRequired
	case errors.Is(err, player.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrRoundNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrRoundActive), errors.Is(err, ErrRoundResolved):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidBet), errors.Is(err, ErrInvalidDecision):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "internal error"
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

type betRequest struct {
	TelegramID string `json:"telegram_id"`
	Bet        int64  `json:"bet"`
}

func RegisterRoutes(r fiber.Router, svc *Service) {

	r.Post("/coinflip/flip", func(c *fiber.Ctx) error {
		var body struct {
			betRequest
			Choice games.CoinSide `json:"choice"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		res, err := svc.PlayCoinflip(c.Context(), body.TelegramID, body.Bet, body.Choice)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/penalty/shoot", func(c *fiber.Ctx) error {
		var body struct {
			betRequest
			Direction games.Direction `json:"direction"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		res, err := svc.PlayPenalty(c.Context(), body.TelegramID, body.Bet, body.Direction)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/slots/spin", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		res, err := svc.PlaySlots(c.Context(), body.TelegramID, body.Bet)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/roulette/spin", func(c *fiber.Ctx) error {
		var body struct {
			TelegramID string              `json:"telegram_id"`
			Bets       []games.RouletteBet `json:"bets"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		res, err := svc.PlayRoulette(c.Context(), body.TelegramID, body.Bets)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/blackjack/start", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.StartBlackjack(c.Context(), body.TelegramID, body.Bet)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/blackjack/hit", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.BlackjackHit(c.Context(), body.TelegramID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/blackjack/stand", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.BlackjackStand(c.Context(), body.TelegramID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Get("/blackjack/state/:tid", func(c *fiber.Ctx) error {
		st, err := svc.BlackjackStatus(c.Params("tid"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/mines/start", func(c *fiber.Ctx) error {
		var body struct {
			betRequest
			Mines int `json:"mines"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.StartMines(c.Context(), body.TelegramID, body.Bet, body.Mines)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/mines/reveal", func(c *fiber.Ctx) error {
		var body struct {
			TelegramID string `json:"telegram_id"`
			Cell       int    `json:"cell"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.MinesReveal(c.Context(), body.TelegramID, body.Cell)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/mines/cashout", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.MinesCashOut(c.Context(), body.TelegramID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Get("/mines/state/:tid", func(c *fiber.Ctx) error {
		st, err := svc.MinesStatus(c.Params("tid"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/crash/start", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.StartCrash(c.Context(), body.TelegramID, body.Bet)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Post("/crash/cashout", func(c *fiber.Ctx) error {
		var body betRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		st, err := svc.CrashCashOut(c.Context(), body.TelegramID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Get("/crash/state/:tid", func(c *fiber.Ctx) error {
		st, err := svc.CrashStatus(c.Context(), c.Params("tid"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(st)
	})

	r.Get("/fair/commitment", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"server_seed_hash": svc.Commitment()})
	})
}
