package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/services"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns a page of the user's orders, newest first, with the
// unpaged total for the pagination envelope.
func (r *OrderRepository) ListForUser(userID uint, status entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

// UpdateStatusGuard applies fields plus the new status only while the
// order still holds the expected status. Reports whether a row changed.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to entity.OrderStatus, fields map[string]any) (bool, error) {
	set := map[string]any{"status": to}
	for k, v := range fields {
		set[k] = v
	}
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(set)
	return res.RowsAffected == 1, res.Error
}

// UpdatePaymentGuard applies fields only while payment_status still holds
// the expected value. fields must include the new payment_status.
func (r *OrderRepository) UpdatePaymentGuard(orderID uint, from entity.PaymentStatus, fields map[string]any) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, from).
		Updates(fields)
	return res.RowsAffected == 1, res.Error
}
