package orders

import (
	"errors"

	"lokanta-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	UserID uint               `json:"userId"`
	Items  []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		lines := make([]store.OrderLine, 0, len(body.Items))
		for _, item := range body.Items {
			lines = append(lines, store.OrderLine{
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
			})
		}

		order, err := st.CreateOrder(body.UserID, lines)
		if err != nil {
			if errors.Is(err, store.ErrUnknownMenuItem) {
				return fiber.NewError(fiber.StatusBadRequest, "Order references unknown menu item")
			}
			if errors.Is(err, store.ErrInvalidQuantity) {
				return fiber.NewError(fiber.StatusBadRequest, "Order item quantity must be at least 1")
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := st.ListOrders()
		if err != nil {
			return err
		}
		return c.JSON(orders)
	}
}

func GetHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
		}

		order, err := st.GetOrder(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order not found")
			}
			return err
		}
		return c.JSON(order)
	}
}
