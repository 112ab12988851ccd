package history

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, repo Repo) {

	r.Get("/history/:tid", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		records, err := repo.List(c.Context(), c.Params("tid"), limit)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		if records == nil {
			records = []Record{}
		}
		return c.JSON(records)
	})
}
