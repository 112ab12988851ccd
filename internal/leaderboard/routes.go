package leaderboard

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, store Store) {

	r.Get("/leaderboard", func(c *fiber.Ctx) error {
		n := c.QueryInt("limit", 10)
		if n <= 0 || n > 100 {
			n = 10
		}
		entries, err := store.Top(c.Context(), n)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "leaderboard unavailable"})
		}
		return c.JSON(fiber.Map{"leaderboard": entries})
	})
}
