package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/services"
)

type stubOrderStore struct {
	total int64
}

func (s *stubOrderStore) Create(*entity.Order) error { return nil }

func (s *stubOrderStore) FindByID(uint) (*entity.Order, error) {
	return nil, services.ErrOrderNotFound
}

func (s *stubOrderStore) FindForUser(uint, uint) (*entity.Order, error) {
	return nil, services.ErrOrderNotFound
}

func (s *stubOrderStore) ListForUser(uint, entity.OrderStatus, int, int) ([]entity.Order, int64, error) {
	return nil, s.total, nil
}

func (s *stubOrderStore) UpdateStatusGuard(uint, entity.OrderStatus, entity.OrderStatus, map[string]any) (bool, error) {
	return false, nil
}

func (s *stubOrderStore) UpdatePaymentGuard(uint, entity.PaymentStatus, map[string]any) (bool, error) {
	return false, nil
}

func TestPageParamsClampsBadInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"zero limit", "?page=0&limit=0", 1, 10},
		{"negative", "?page=-2&limit=-3", 1, 10},
		{"non numeric", "?page=abc&limit=xyz", 1, 10},
		{"over max limit", "?limit=1000", 1, 10},
		{"in range", "?page=3&limit=25", 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			page, limit := pageParams(c)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("pageParams(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestListForMeSurvivesZeroLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.NewOrderService(&stubOrderStore{total: 5}, nil, nil, services.OrderConfig{})
	ctrl := NewOrderController(svc)

	r := gin.New()
	r.GET("/orders", func(c *gin.Context) { c.Set("userId", uint(7)) }, ctrl.ListForMe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?limit=0", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var body struct {
		Data struct {
			Pagination struct {
				Page  int   `json:"page"`
				Limit int   `json:"limit"`
				Pages int64 `json:"pages"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	p := body.Data.Pagination
	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("envelope reports page=%d limit=%d, want page=1 limit=10", p.Page, p.Limit)
	}
	if p.Pages != 1 {
		t.Errorf("pages = %d, want 1 for total=5 limit=10", p.Pages)
	}
}
