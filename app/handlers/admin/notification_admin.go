package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	notifications, total, err := h.notificationRepo.GetPaginated(r.Context(), adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		log.Printf("NotificationHandler.List: %v", err)
		redirectWithMessage(w, r, "/admin/", "error", "Could not load notifications.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":         "Notifications",
		"Notifications": notifications,
		"Total":         total,
		"Page":          page,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/notifications", data)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	if err := h.notificationRepo.MarkRead(r.Context(), uint(id)); err != nil {
		log.Printf("NotificationHandler.MarkRead: %v", err)
		redirectWithMessage(w, r, "/admin/notifications", "error", "Could not mark the notification as read.")
		return
	}
	redirectWithMessage(w, r, "/admin/notifications", "success", "Notification marked as read.")
}
