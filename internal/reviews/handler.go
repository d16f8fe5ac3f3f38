package reviews

import (
	"errors"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	UserID     uint   `json:"userId"`
	MenuItemID uint   `json:"menuItemId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		review := models.Review{
			Rating:     body.Rating,
			Comment:    body.Comment,
			UserID:     body.UserID,
			MenuItemID: body.MenuItemID,
		}
		if err := st.CreateReview(&review); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(review)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reviews, err := st.ListReviews()
		if err != nil {
			return err
		}
		return c.JSON(reviews)
	}
}

// ListByMenuItemHandler serves GET /menu-items/:id/reviews with the
// submitting user attached to each review.
func ListByMenuItemHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid menu item id")
		}

		reviews, err := st.ListReviewsByMenuItem(uint(id))
		if err != nil {
			return err
		}
		return c.JSON(reviews)
	}
}
