package models

// Role values a user account can hold. Role drives authorization in the
// presentation layer; the data layer only constrains the domain.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is an account in the system — administrator, staff member, or customer.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username" validate:"required,alpha_dash,min=2,max=100"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"    validate:"required,email"`
	Password string `gorm:"size:255;not null"             json:"-"` // hashed, never serialised
	Role     string `gorm:"size:50;default:customer"      json:"role"   validate:"required,in=admin,staff,customer"`
	Status   string `gorm:"size:50;default:active"        json:"status" validate:"required,in=active,inactive"`
}
