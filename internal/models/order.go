package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"size:20;not null" json:"orderNumber"`
	TotalPrice  float64     `gorm:"not null" json:"totalPrice"`
	UserID      uint        `gorm:"not null;index" json:"userId"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	OrderID    uint `gorm:"not null;index" json:"orderId"`
	MenuItemID uint `gorm:"not null" json:"menuItemId"`
	Quantity   int  `gorm:"not null" json:"quantity"`
}
