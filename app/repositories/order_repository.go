package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/collection"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// OrderRepository handles database operations for Order and its items.
//
// Orders reference users without database-level foreign keys so they can
// outlive account deletion; this repository performs the write-time existence
// checks instead.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order and its items in one transaction.
//
// Each item's unit price is snapshotted from the book's current price at this
// moment; later catalogue price changes never rewrite the order. TotalAmount
// is derived from the snapshotted lines, FinalAmount from the amount hook.
func (r *OrderRepository) Create(order *models.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order needs at least one item", dberr.ErrConstraint)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.checkUserRef(tx, order.CustomerID, "customer"); err != nil {
			return err
		}
		if order.StaffID != nil {
			if err := r.checkUserRef(tx, *order.StaffID, "staff"); err != nil {
				return err
			}
		}

		for i := range order.Items {
			var book models.Book
			if err := tx.First(&book, order.Items[i].BookID).Error; err != nil {
				return fmt.Errorf("%w: order item references missing book %d",
					dberr.ErrConstraint, order.Items[i].BookID)
			}
			order.Items[i].Price = book.Price
			if errs := validate.Struct(&order.Items[i]); validate.HasErrors(errs) {
				return validationError(errs)
			}
		}

		order.TotalAmount = collection.Reduce(order.Items, 0.0,
			func(acc float64, item models.OrderItem) float64 {
				return acc + item.Price*float64(item.Quantity)
			})

		if errs := validate.Struct(order); validate.HasErrors(errs) {
			return validationError(errs)
		}

		return dberr.Translate(tx.Create(order).Error)
	})
}

// FindByID loads an order with its items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return order, dberr.Translate(err)
}

// FindByCode loads an order by its unique code.
func (r *OrderRepository) FindByCode(code string) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("order_code = ?", code).First(&order).Error
	return order, dberr.Translate(err)
}

// ByCustomer returns a customer's orders, newest first.
func (r *OrderRepository) ByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&orders).Error
	return orders, dberr.Translate(err)
}

// UpdateStatus sets the order status; zero matched rows means the order does
// not exist.
func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	in := struct {
		Status string `json:"status" validate:"required,in=pending,shipped,completed,cancelled"`
	}{status}
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return validationError(errs)
	}

	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus sets the payment status.
func (r *OrderRepository) UpdatePaymentStatus(id uint, status string) error {
	in := struct {
		Status string `json:"payment_status" validate:"required,in=unpaid,paid,refunded"`
	}{status}
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return validationError(errs)
	}

	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete removes an order; its items cascade with it.
func (r *OrderRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) checkUserRef(tx *gorm.DB, userID uint, role string) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return dberr.Translate(err)
	}
	if count == 0 {
		return fmt.Errorf("%w: order references missing %s user %d", dberr.ErrConstraint, role, userID)
	}
	return nil
}
