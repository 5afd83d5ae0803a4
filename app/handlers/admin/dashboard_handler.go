package admin

import (
	"log"
	"net/http"

	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render           *render.Render
	productRepo      repositories.ProductRepository
	categoryRepo     repositories.CategoryRepository
	orderRepo        repositories.OrderRepository
	notificationRepo repositories.NotificationRepository
	newsRepo         repositories.NewsRepository
}

func NewDashboardHandler(
	rnd *render.Render,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	orderRepo repositories.OrderRepository,
	notificationRepo repositories.NotificationRepository,
	newsRepo repositories.NewsRepository,
) *DashboardHandler {
	return &DashboardHandler{
		render:           rnd,
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		newsRepo:         newsRepo,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productCount, err := h.productRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: product count: %v", err)
	}
	categoryCount, err := h.categoryRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: category count: %v", err)
	}
	orderCount, err := h.orderRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: order count: %v", err)
	}
	newsCount, err := h.newsRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: news count: %v", err)
	}
	unreadCount, err := h.notificationRepo.CountUnread(ctx)
	if err != nil {
		log.Printf("Dashboard: unread notifications count: %v", err)
	}

	recentOrders, _, err := h.orderRepo.GetPaginated(ctx, 10, 0)
	if err != nil {
		log.Printf("Dashboard: recent orders: %v", err)
	}

	var revenue int64
	for i := range recentOrders {
		revenue += recentOrders[i].GrandTotal()
	}

	data := baseData(r, map[string]interface{}{
		"Title":         "Dashboard",
		"ProductCount":  productCount,
		"CategoryCount": categoryCount,
		"OrderCount":    orderCount,
		"NewsCount":     newsCount,
		"UnreadCount":   unreadCount,
		"RecentOrders":  recentOrders,
		"RecentRevenue": revenue,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
