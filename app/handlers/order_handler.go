package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render   *render.Render
	orderSvc *services.OrderService
}

func NewOrderHandler(rnd *render.Render, orderSvc *services.OrderService) *OrderHandler {
	return &OrderHandler{
		render:   rnd,
		orderSvc: orderSvc,
	}
}

// Create accepts the cart submission and persists exactly one order. The
// payment method is stored as submitted, unknown values included.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	order, err := h.orderSvc.Place(r.Context(), userID, input)
	if err != nil {
		log.Printf("OrderHandler.Create: %v", err)
		writeServerError(h.render, w)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]uint{"id": order.ID})
}
