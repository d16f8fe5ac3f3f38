package inventory

import (
	"errors"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item := models.InventoryItem{
			Name:        body.Name,
			Description: body.Description,
			Quantity:    body.Quantity,
			UnitPrice:   body.UnitPrice,
		}
		if err := st.CreateInventoryItem(&item); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := st.ListInventoryItems()
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
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		item, err := st.GetInventoryItem(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
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
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		item, err := st.GetInventoryItem(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
			}
			return err
		}

		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item.Name = body.Name
		item.Description = body.Description
		item.Quantity = body.Quantity
		item.UnitPrice = body.UnitPrice

		if err := st.UpdateInventoryItem(item); err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func DeleteHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
		}

		if err := st.DeleteInventoryItem(uint(id)); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
