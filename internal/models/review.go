package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"size:255" json:"comment"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       *User     `json:"user,omitempty"`
	MenuItemID uint      `gorm:"not null;index" json:"menuItemId"`
	CreatedAt  time.Time `json:"createdAt"`
}
