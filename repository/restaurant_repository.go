package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/services"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GetRestaurant returns an active-or-not restaurant by id; absent rows map
// to the domain not-found error so the order service can treat missing and
// inactive uniformly.
func (r *RestaurantRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListFilter narrows the public restaurant listing.
type ListFilter struct {
	Cuisine   string
	MinRating float64
	Search    string
	Page      int
	Limit     int
}

// List returns active restaurants matching the filter, best rated first,
// with the unpaged total.
func (r *RestaurantRepository) List(f ListFilter) ([]entity.Restaurant, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}

	q := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true)
	if f.Cuisine != "" {
		q = q.Where("cuisine = ?", f.Cuisine)
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("rating DESC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

// Deactivate soft-disables a restaurant so new orders against it fail the
// active check while history stays intact.
func (r *RestaurantRepository) Deactivate(id uint) error {
	return r.Update(id, map[string]any{"is_active": false})
}
