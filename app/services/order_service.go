package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"gorm.io/gorm"
)

// OrderInput is the cart submission body.
type OrderInput struct {
	Items           []models.OrderItem `json:"items"`
	PaymentMethod   string             `json:"payment_method"`
	CustomerName    string             `json:"customer_name"`
	CustomerSurname string             `json:"customer_surname"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
}

// OrderService persists cart submissions and synthesizes the order
// notification as an explicit synchronous post-create step.
type OrderService struct {
	db            *gorm.DB
	orders        repositories.OrderRepository
	profiles      repositories.ProfileRepository
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
	mailer        *Mailer
	staffEmail    string
}

func NewOrderService(
	db *gorm.DB,
	orders repositories.OrderRepository,
	profiles repositories.ProfileRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
	mailer *Mailer,
	staffEmail string,
) *OrderService {
	return &OrderService{
		db:            db,
		orders:        orders,
		profiles:      profiles,
		users:         users,
		notifications: notifications,
		mailer:        mailer,
		staffEmail:    staffEmail,
	}
}

// Place creates exactly one order from the submission. Each customer field
// is resolved independently: payload value first, then the authenticated
// caller's profile, then empty. The resolved fields are a snapshot, later
// profile edits never change them.
//
// The notification is synthesized right after the order commit; a synthesis
// failure is logged but does not unwind the order.
func (s *OrderService) Place(ctx context.Context, userID uint, input OrderInput) (*models.Order, error) {
	order := &models.Order{
		Items:           input.Items,
		PaymentMethod:   input.PaymentMethod,
		CustomerName:    input.CustomerName,
		CustomerSurname: input.CustomerSurname,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
	}
	if order.Items == nil {
		order.Items = models.OrderItems{}
	}

	var profile *models.Profile
	if userID != 0 {
		uid := userID
		order.UserID = &uid

		var err error
		profile, err = s.profiles.FindByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile for order: %w", err)
		}
		if profile != nil {
			if order.CustomerName == "" {
				order.CustomerName = profile.Name
			}
			if order.CustomerSurname == "" {
				order.CustomerSurname = profile.Surname
			}
			if order.CustomerPhone == "" {
				order.CustomerPhone = profile.Phone
			}
			if order.CustomerAddress == "" {
				order.CustomerAddress = profile.Address
			}
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.synthesizeNotification(ctx, order, profile); err != nil {
		// Known gap: the order stays committed even when the notification
		// write fails.
		log.Printf("Place: failed to synthesize notification for order #%d: %v", order.ID, err)
	}

	return order, nil
}

func (s *OrderService) synthesizeNotification(ctx context.Context, order *models.Order, profile *models.Profile) error {
	var user *models.User
	if order.UserID != nil {
		var err error
		user, err = s.users.FindByID(ctx, *order.UserID)
		if err != nil {
			return fmt.Errorf("failed to load order user: %w", err)
		}
	}

	message := buildOrderMessage(order, user, profile)

	notification := &models.Notification{
		NotifType: models.NotifTypeOrder,
		OrderID:   order.ID,
		Message:   message,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	if s.mailer != nil && s.staffEmail != "" {
		subject := fmt.Sprintf("Новый заказ #%d", order.ID)
		if err := s.mailer.SendPlainEmail(s.staffEmail, subject, message); err != nil {
			log.Printf("synthesizeNotification: failed to email staff copy for order #%d: %v", order.ID, err)
		}
	}
	return nil
}

// buildOrderMessage renders the fixed multi-line notification text. Display
// contact data prefers the profile fields, falls back to the user record and
// bottoms out at the "Guest" placeholder for anonymous orders.
func buildOrderMessage(order *models.Order, user *models.User, profile *models.Profile) string {
	var firstName, lastName, email, phone string

	if user != nil {
		if profile != nil && (profile.Name != "" || profile.Surname != "") {
			firstName = profile.Name
			lastName = profile.Surname
		} else {
			firstName = user.FirstName
			lastName = user.LastName
		}
		if firstName == "" {
			firstName = "Guest"
		}

		email = user.Email
		if profile != nil && profile.Email != "" {
			email = profile.Email
		}
		phone = user.Phone
		if profile != nil && profile.Phone != "" {
			phone = profile.Phone
		}
	} else {
		firstName = "Guest"
	}

	lines := []string{
		fmt.Sprintf("Новый заказ #%d", order.ID),
		fmt.Sprintf("Пользователь: %s %s", firstName, lastName),
		fmt.Sprintf("Email: %s", email),
		fmt.Sprintf("Телефон: %s", phone),
		fmt.Sprintf("Оплата: %s", models.PaymentMethodLabel(order.PaymentMethod)),
		fmt.Sprintf("Всего товаров: %d", order.TotalItems()),
		"Состав заказа:",
	}

	for _, item := range order.Items {
		subtotal := item.Price * int64(item.Quantity)
		lines = append(lines, fmt.Sprintf("  • %s × %d — %d UZS", item.Title, item.Quantity, subtotal))
	}

	return strings.Join(lines, "\n")
}
