package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/pkg/resp"
	"github.com/surukutlaManoj/Food-Delivery/repository"
	"github.com/surukutlaManoj/Food-Delivery/services"
)

type RestaurantController struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{repo: repo}
}

// GET /restaurants?cuisine=&minRating=&search=&page=&limit=
func (rc *RestaurantController) List(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	page, limit := pageParams(c)

	restaurants, total, err := rc.repo.List(repository.ListFilter{
		Cuisine:   c.Query("cuisine"),
		MinRating: minRating,
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	resp.OK(c, gin.H{
		"restaurants": restaurants,
		"pagination":  gin.H{"page": page, "limit": limit, "total": total, "pages": pages},
	})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := rc.repo.GetRestaurant(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !rest.IsActive {
		resp.NotFound(c, services.ErrRestaurantNotFound.Error())
		return
	}
	resp.OK(c, rest)
}

type RestaurantIn struct {
	Name         string                `json:"name" binding:"required"`
	Description  string                `json:"description"`
	Image        string                `json:"image"`
	Cuisine      string                `json:"cuisine" binding:"required"`
	DeliveryTime string                `json:"deliveryTime"`
	DeliveryFee  float64               `json:"deliveryFee" binding:"min=0"`
	MinOrder     float64               `json:"minOrder" binding:"min=0"`
	Street       string                `json:"street"`
	City         string                `json:"city"`
	Menu         []entity.MenuCategory `json:"menu"`
}

// POST /restaurants (admin)
func (rc *RestaurantController) Create(c *gin.Context) {
	var req RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := json.Marshal(req.Menu)
	if err != nil {
		resp.BadRequest(c, "invalid menu")
		return
	}

	rest := entity.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Cuisine:      req.Cuisine,
		DeliveryTime: req.DeliveryTime,
		DeliveryFee:  req.DeliveryFee,
		MinOrder:     req.MinOrder,
		Street:       req.Street,
		City:         req.City,
		Menu:         datatypes.JSON(menu),
		IsActive:     true,
	}
	if err := rc.repo.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /restaurants/:id (admin)
func (rc *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	allowed := map[string]string{
		"name": "name", "description": "description", "image": "image",
		"cuisine": "cuisine", "deliveryTime": "delivery_time",
		"deliveryFee": "delivery_fee", "minOrder": "min_order",
		"rating": "rating", "isActive": "is_active",
	}
	updates := map[string]any{}
	for k, v := range req {
		if col, ok := allowed[k]; ok {
			updates[col] = v
		}
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := rc.repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	rest, err := rc.repo.GetRestaurant(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id (admin) — deactivates, history stays
func (rc *RestaurantController) Deactivate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.repo.Deactivate(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": false})
}
