package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render    *render.Render
	orderRepo repositories.OrderRepository
}

func NewOrderHandler(rnd *render.Render, orderRepo repositories.OrderRepository) *OrderHandler {
	return &OrderHandler{
		render:    rnd,
		orderRepo: orderRepo,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	orders, total, err := h.orderRepo.GetPaginated(r.Context(), adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		log.Printf("OrderHandler.List: %v", err)
		redirectWithMessage(w, r, "/admin/", "error", "Could not load orders.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":  "Orders",
		"Orders": orders,
		"Total":  total,
		"Page":   page,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/orders", data)
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	order, err := h.orderRepo.FindByID(r.Context(), uint(id))
	if err != nil || order == nil {
		log.Printf("OrderHandler.Detail: order %d: %v", id, err)
		redirectWithMessage(w, r, "/admin/orders", "error", "Order not found.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title": "Order detail",
		"Order": order,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/order_detail", data)
}
