package models

import "time"

// BaseModel is embedded by every entity. Deletes are hard on purpose: the
// cascade rules and the (user, book) cart uniqueness depend on rows actually
// leaving the table, which gorm.Model's soft delete would prevent.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
