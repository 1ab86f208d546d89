package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Order is a customer purchase. CustomerID and StaffID reference users but
// deliberately carry no database-level foreign key: orders must survive user
// deletion for audit purposes, so referential existence is checked by the
// repository at write time instead.
type Order struct {
	BaseModel
	OrderCode      string  `gorm:"uniqueIndex;size:64;not null" json:"order_code" validate:"required,max=64"`
	CustomerID     uint    `gorm:"not null;index"               json:"customer_id"`
	TotalAmount    float64 `gorm:"not null;default:0"           json:"total_amount" validate:"gte=0"`
	ShippingFee    float64 `gorm:"not null;default:0"           json:"shipping_fee" validate:"gte=0"`
	DiscountAmount float64 `gorm:"not null;default:0"           json:"discount_amount" validate:"gte=0"`
	FinalAmount    float64 `gorm:"not null;default:0"           json:"final_amount"`
	Status         string  `gorm:"size:50;default:pending"      json:"status" validate:"required,in=pending,shipped,completed,cancelled"`
	PaymentStatus  string  `gorm:"size:50;default:unpaid"       json:"payment_status" validate:"required,in=unpaid,paid,refunded"`
	StaffID        *uint   `gorm:"index"                        json:"staff_id,omitempty"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeSave keeps the amount invariant: final = total + shipping − discount.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.FinalAmount = o.TotalAmount + o.ShippingFee - o.DiscountAmount
	return nil
}

// OrderItem is a line on an order. Price is a snapshot taken at order time
// and never re-read from the book, so later catalogue price changes do not
// rewrite history. BookID carries no database-level foreign key for the same
// audit reason as Order.CustomerID.
type OrderItem struct {
	BaseModel
	OrderID    uint    `gorm:"not null;index"     json:"order_id"`
	BookID     uint    `gorm:"not null;index"     json:"book_id"`
	Price      float64 `gorm:"not null"           json:"price" validate:"gte=0"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity" validate:"gte=1"`
	TotalPrice float64 `gorm:"not null;default:0" json:"total_price"`
}

// BeforeSave keeps the line invariant: total = price × quantity.
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.TotalPrice = i.Price * float64(i.Quantity)
	return nil
}
