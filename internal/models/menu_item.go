package models

import "time"

// MenuItem carries its own rating aggregate: Review is the running mean of
// all ratings ever submitted and UserCount the number of them. Both are
// normally written only through review creation.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Review      float64   `gorm:"not null;default:0" json:"review"`
	UserCount   int       `gorm:"not null;default:0" json:"userCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
