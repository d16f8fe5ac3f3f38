package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Password  string    `gorm:"size:255;not null" json:"password"` // bcrypt hash, never the plaintext
	Branches  []Branch  `gorm:"many2many:user_branches" json:"branches,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
