package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type NotificationHandler struct {
	render           *render.Render
	notificationRepo repositories.NotificationRepository
}

func NewNotificationHandler(rnd *render.Render, notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		render:           rnd,
		notificationRepo: notificationRepo,
	}
}

type notificationResponse struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	IsRead    bool   `json:"is_read"`
}

// List returns every notification for the caller's orders, newest first,
// unpaginated. Requires authentication.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	notifications, err := h.notificationRepo.FindByOrderOwner(r.Context(), userID)
	if err != nil {
		log.Printf("NotificationHandler.List: %v", err)
		writeServerError(h.render, w)
		return
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
			IsRead:    n.IsRead,
		})
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

// MarkRead toggles the read flag. A notification that does not exist and a
// notification owned by someone else are both 404, existence never leaks.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}

	notification, err := h.notificationRepo.FindOwnedByID(r.Context(), uint(id), userID)
	if err != nil {
		log.Printf("NotificationHandler.MarkRead: %v", err)
		writeServerError(h.render, w)
		return
	}
	if notification == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}

	if err := h.notificationRepo.MarkRead(r.Context(), notification.ID); err != nil {
		log.Printf("NotificationHandler.MarkRead: %v", err)
		writeServerError(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
