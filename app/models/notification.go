package models

const (
	NotificationTypeOrder  = "order"
	NotificationTypeReview = "review"
	NotificationTypeSystem = "system"
)

// Notification is a message addressed to one user. RelatedID points at the
// entity the message is about (order, review, …) depending on Type.
type Notification struct {
	BaseModel
	UserID    uint   `gorm:"not null;index"         json:"user_id"`
	Title     string `gorm:"size:255;not null"      json:"title" validate:"required,max=255"`
	Message   string `gorm:"type:text"              json:"message"`
	Type      string `gorm:"size:50;default:system" json:"type" validate:"required,in=order,review,system"`
	IsRead    bool   `gorm:"not null;default:false" json:"is_read"`
	RelatedID uint   `json:"related_id"`

	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
