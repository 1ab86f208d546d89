package models

// Category groups books in the catalogue. SortOrder fixes the display
// position; seeded categories get their position in the seed list.
type Category struct {
	BaseModel
	Name      string `gorm:"uniqueIndex;size:100;not null" json:"name" validate:"required,min=1,max=100"`
	SortOrder int    `gorm:"not null;default:0"            json:"sort_order"`
	Status    string `gorm:"size:50;default:active"        json:"status" validate:"required,in=active,inactive"`
}
