package menu

import (
	"errors"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UpdateItemRequest deliberately includes the rating aggregate: the update
// endpoint has always accepted client-supplied review/userCount values even
// though review creation is the normal write path for them.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Review      float64 `json:"review"`
	UserCount   int     `json:"userCount"`
}

func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item := models.MenuItem{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
		}
		if err := st.CreateMenuItem(&item); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := st.ListMenuItems()
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func GetHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid menu item id")
		}

		item, err := st.GetMenuItem(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
			}
			return err
		}
		return c.JSON(item)
	}
}

func UpdateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid menu item id")
		}

		item, err := st.GetMenuItem(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
			}
			return err
		}

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item.Name = body.Name
		item.Description = body.Description
		item.Price = body.Price
		item.Review = body.Review
		item.UserCount = body.UserCount

		if err := st.UpdateMenuItem(item); err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func DeleteHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid menu item id")
		}

		if err := st.DeleteMenuItem(uint(id)); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
