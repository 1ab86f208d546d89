package models

// Review is a customer rating for a book. Rating lives in [1.0, 5.0]; the
// range is enforced at write time and backed by a check constraint.
type Review struct {
	BaseModel
	BookID  uint    `gorm:"not null;index" json:"book_id"`
	UserID  uint    `gorm:"not null;index" json:"user_id"`
	Rating  float64 `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating" validate:"required,between=1,5"`
	Comment string  `gorm:"type:text" json:"comment" validate:"max=2000"`

	Book Book `json:"book,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
