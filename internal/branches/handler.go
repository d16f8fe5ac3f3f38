package branches

import (
	"strings"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateBranchRequest struct {
	Name string `json:"name"`
}

func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		branch := models.Branch{Name: strings.TrimSpace(body.Name)}
		if err := st.CreateBranch(&branch); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(branch)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := st.ListBranches()
		if err != nil {
			return err
		}
		return c.JSON(branches)
	}
}
