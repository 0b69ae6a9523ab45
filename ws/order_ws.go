package ws

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/surukutlaManoj/Food-Delivery/services"
	"github.com/surukutlaManoj/Food-Delivery/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderSocket upgrades clients into an order's room and pumps events to
// the connection.
type OrderSocket struct {
	hub    *OrderHub
	orders *services.OrderService
}

func NewOrderSocket(hub *OrderHub, orders *services.OrderService) *OrderSocket {
	return &OrderSocket{hub: hub, orders: orders}
}

// Handle serves GET /ws/orders/:id. Only the order's owner (or an admin)
// may join its room.
func (s *OrderSocket) Handle(c *gin.Context) {
	orderID64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(orderID64)

	userID := utils.CurrentUserID(c)
	if utils.CurrentRole(c) != "admin" {
		if _, err := s.orders.DetailForUser(userID, orderID); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sub := s.hub.Subscribe(orderID)

	// drain the client side; a read error means the peer went away
	go func() {
		defer s.hub.Unsubscribe(sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer conn.Close()
		for event := range sub.Events() {
			if err := conn.WriteJSON(event); err != nil {
				s.hub.Unsubscribe(sub)
				return
			}
		}
	}()
}
