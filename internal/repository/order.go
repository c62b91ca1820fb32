package repository

import (
	"context"
	"time"

	"apparel-storefront/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithItems writes the order row and all item rows in one
	// transaction, so a failed item insert never leaves an orphaned order.
	CreateWithItems(ctx context.Context, order *model.Order, items []*model.OrderItem) error
	FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	GetItems(ctx context.Context, orderID uint) ([]*model.OrderItem, error)
	// MarkPaid flips payment_status to paid and status to processing; it is
	// the only write path for payment_status.
	MarkPaid(ctx context.Context, orderNumber string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) CreateWithItems(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			item.OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *orderRepoImpl) FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) GetItems(ctx context.Context, orderID uint) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("order_number = ?", orderNumber).
			Where("payment_status = ?", model.PaymentStatusPending).
			Updates(map[string]interface{}{
				"payment_status": model.PaymentStatusPaid,
				"status":         model.OrderStatusProcessing,
				"updated_at":     time.Now(),
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Fetch the updated record within the same transaction
		return tx.Where("order_number = ?", orderNumber).First(&order).Error
	})

	return &order, err
}
