package orders

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kaykidoutai/pizzapi2/app/api"
	"github.com/kaykidoutai/pizzapi2/models"
)

type Response struct {
	Total  int     `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	Reference    string    `json:"reference"`
	StoreID      string    `json:"store_id"`
	StoreOrderID string    `json:"store_order_id"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	Coupons      []string  `json:"coupons"`
	CreatedAt    time.Time `json:"created_at"`
}

type Line struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Options string `json:"options"`
}

type OrderDetail struct {
	Order
	Email string `json:"email"`
	Lines []Line `json:"lines"`
}

type OrdersProvider interface {
	GetFilteredOrders(ctx context.Context, offset, limit int, filters models.OrderFilters) ([]models.OrderRecord, int64, error)
	GetByReference(ctx context.Context, reference string) (*models.OrderRecord, error)
}

type OrdersHandler struct {
	repo OrdersProvider
}

func NewOrdersHandler(r OrdersProvider) *OrdersHandler {
	return &OrdersHandler{
		repo: r,
	}
}

func (h *OrdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	offset, limit := api.Pagination(r)

	filters := models.OrderFilters{
		StoreID: r.URL.Query().Get("store"),
		Status:  r.URL.Query().Get("status"),
	}

	res, total, err := h.repo.GetFilteredOrders(r.Context(), offset, limit, filters)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get orders")
		return
	}

	orders := make([]Order, len(res))
	for i := range res {
		orders[i] = summary(&res[i])
	}

	api.OKResponse(w, Response{
		Total:  int(total),
		Orders: orders,
	})
}

func (h *OrdersHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	reference := r.PathValue("reference")

	rec, err := h.repo.GetByReference(r.Context(), reference)
	if errors.Is(err, models.ErrOrderNotFound) {
		api.ErrorResponse(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		zap.L().Error("failed to get order", zap.String("reference", reference), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get order")
		return
	}

	lines := make([]Line, len(rec.Lines))
	for i, l := range rec.Lines {
		lines[i] = Line{
			Code:    l.Code,
			Name:    l.Name,
			Qty:     l.Qty,
			Options: l.Options,
		}
	}

	api.OKResponse(w, OrderDetail{
		Order: summary(rec),
		Email: rec.CustomerEmail,
		Lines: lines,
	})
}

func summary(rec *models.OrderRecord) Order {
	coupons := []string(rec.CouponCodes)
	if coupons == nil {
		coupons = []string{}
	}
	return Order{
		Reference:    rec.Reference,
		StoreID:      rec.StoreID,
		StoreOrderID: rec.StoreOrderID,
		Status:       rec.Status,
		Total:        rec.Total.InexactFloat64(),
		Coupons:      coupons,
		CreatedAt:    rec.CreatedAt,
	}
}
