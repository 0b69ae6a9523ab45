package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/pkg/resp"
	"github.com/surukutlaManoj/Food-Delivery/services"
	"github.com/surukutlaManoj/Food-Delivery/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// writeOrderError maps the domain error taxonomy onto HTTP statuses.
func writeOrderError(c *gin.Context, err error) {
	var minErr *services.MinimumOrderError
	var invalid *entity.InvalidTransitionError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrRestaurantNotFound):
		resp.NotFound(c, err.Error())
	case errors.As(err, &minErr),
		errors.As(err, &invalid),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrPaymentFailed):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func orderID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// pageParams clamps the pagination query to the bounds the repositories
// enforce, so the envelope reports the values actually used and a zero
// limit cannot reach the pages division.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.orders.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /orders?status=&page=&limit=
func (oc *OrderController) ListForMe(c *gin.Context) {
	status := entity.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}
	page, limit := pageParams(c)

	orders, total, err := oc.orders.ListForUser(utils.CurrentUserID(c), status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	resp.OK(c, gin.H{
		"orders":     orders,
		"pagination": gin.H{"page": page, "limit": limit, "total": total, "pages": pages},
	})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.orders.DetailForUser(utils.CurrentUserID(c), orderID(c))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type UpdateStatusRequest struct {
	Status                entity.OrderStatus `json:"status" binding:"required"`
	EstimatedDeliveryTime *time.Time         `json:"estimatedDeliveryTime"`
}

// PUT /orders/:id/status (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}

	order, err := oc.orders.UpdateStatus(orderID(c), req.Status, req.EstimatedDeliveryTime)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// PUT /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	var req CancelRequest
	_ = c.ShouldBindJSON(&req) // reason is optional

	order, err := oc.orders.Cancel(utils.CurrentUserID(c), orderID(c), req.Reason)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type PaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// POST /orders/:id/payment
func (oc *OrderController) Pay(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.orders.ProcessPayment(utils.CurrentUserID(c), orderID(c), req.PaymentMethod)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order, "paymentId": order.PaymentID})
}

// GET /orders/:id/track
func (oc *OrderController) Track(c *gin.Context) {
	info, err := oc.orders.Track(utils.CurrentUserID(c), orderID(c))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, info)
}
