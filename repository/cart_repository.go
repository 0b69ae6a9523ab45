package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/surukutlaManoj/Food-Delivery/cart"
	"github.com/surukutlaManoj/Food-Delivery/entity"
)

// CartRepository persists one cart snapshot per user as a JSON row.
type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ForUser scopes the repository to a single user's cart, satisfying
// cart.Storage.
func (r *CartRepository) ForUser(userID uint) cart.Storage {
	return &userCartStorage{db: r.DB, userID: userID}
}

type userCartStorage struct {
	db     *gorm.DB
	userID uint
}

func (s *userCartStorage) Get() (*cart.Cart, error) {
	var row entity.CartSnapshot
	err := s.db.Where("user_id = ?", s.userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(row.Snapshot, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *userCartStorage) Set(c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	row := entity.CartSnapshot{UserID: s.userID, Snapshot: raw}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot", "updated_at"}),
	}).Create(&row).Error
}

func (s *userCartStorage) Remove() error {
	return s.db.Where("user_id = ?", s.userID).Delete(&entity.CartSnapshot{}).Error
}
