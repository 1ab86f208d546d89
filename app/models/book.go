package models

// Book is a catalogue item. Price and Stock are mutated by order fulfilment;
// Rating and SoldCount are denormalised aggregates maintained on review and
// order writes.
type Book struct {
	BaseModel
	Title      string   `gorm:"size:255;not null;index" json:"title" validate:"required,min=1,max=255"`
	Author     string   `gorm:"size:255;not null"       json:"author" validate:"required,max=255"`
	CategoryID uint     `gorm:"not null;index"          json:"category_id"`
	Category   Category `json:"category,omitempty"`
	Price      float64  `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Stock      int      `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Rating     float64  `gorm:"not null;default:0" json:"rating"`
	SoldCount  int      `gorm:"not null;default:0" json:"sold_count"`
	Status     string   `gorm:"size:50;default:active" json:"status" validate:"required,in=active,inactive"`
}
