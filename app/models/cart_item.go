package models

// CartItem is a persisted cart row. The composite unique index keeps at most
// one row per (user, book); adding an existing pair is an upsert that
// increments quantity, never a duplicate insert. Rows are meaningless without
// their user or book, so both relationships cascade.
type CartItem struct {
	BaseModel
	UserID     uint `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID     uint `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Quantity   int  `gorm:"not null;default:1" json:"quantity" validate:"gte=1"`
	IsSelected bool `gorm:"not null;default:true" json:"is_selected"`

	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Book Book `json:"book,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
