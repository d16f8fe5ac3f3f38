package store

import (
	"errors"
	"fmt"
	"math/rand"

	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

// OrderLine is one requested order position.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

// CreateOrder prices every line against the current menu, generates an
// order number and persists the order with its items in one transaction.
// The total is fixed at order time: later menu price changes do not touch
// existing orders.
func (s *Store) CreateOrder(userID uint, lines []OrderLine) (*models.Order, error) {
	order := &models.Order{
		OrderNumber: newOrderNumber(),
		UserID:      userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, line := range lines {
			if line.Quantity < 1 {
				return ErrInvalidQuantity
			}
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownMenuItem
				}
				return err
			}
			total += item.Price * float64(line.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			})
		}
		order.TotalPrice = total
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

// newOrderNumber returns "ORD" plus six random digits. Collisions are not
// checked; the number is a display reference, not a key.
func newOrderNumber() string {
	return fmt.Sprintf("ORD%06d", rand.Intn(1000000))
}
