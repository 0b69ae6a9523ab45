package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surukutlaManoj/Food-Delivery/cart"
	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/pkg/resp"
	"github.com/surukutlaManoj/Food-Delivery/repository"
	"github.com/surukutlaManoj/Food-Delivery/utils"
)

// CartController exposes the session cart over HTTP. Each request restores
// the caller's persisted snapshot, applies one operation and persists the
// result.
type CartController struct {
	carts *repository.CartRepository
	log   *slog.Logger
}

func NewCartController(carts *repository.CartRepository, log *slog.Logger) *CartController {
	return &CartController{carts: carts, log: log}
}

func (cc *CartController) session(c *gin.Context) *cart.Session {
	return cart.NewSession(cc.carts.ForUser(utils.CurrentUserID(c)), cc.log)
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	resp.OK(c, cc.session(c).Cart())
}

type AddItemRequest struct {
	Name           string                         `json:"name" binding:"required"`
	UnitPrice      float64                        `json:"unitPrice" binding:"min=0"`
	Quantity       int                            `json:"quantity" binding:"min=1"`
	Customizations []entity.SelectedCustomization `json:"customizations"`
	RestaurantID   uint                           `json:"restaurantId" binding:"required"`
	RestaurantName string                         `json:"restaurantName"`
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := cc.session(c).AddItem(cart.Item{
		Name:           req.Name,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		Customizations: req.Customizations,
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		if errors.Is(err, cart.ErrCrossRestaurantConflict) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, updated)
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:id
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cc.session(c).UpdateQuantity(c.Param("id"), req.Quantity))
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	resp.OK(c, cc.session(c).RemoveItem(c.Param("id")))
}

type SetRestaurantRequest struct {
	RestaurantID   uint   `json:"restaurantId" binding:"required"`
	RestaurantName string `json:"restaurantName"`
}

// PUT /cart/restaurant — rebinding clears the items
func (cc *CartController) SetRestaurant(c *gin.Context) {
	var req SetRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cc.session(c).SetRestaurant(req.RestaurantID, req.RestaurantName))
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	resp.OK(c, cc.session(c).Clear())
}
