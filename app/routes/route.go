package routes

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/configs"
	"github.com/nodirbekm/koreancosmetics/app/handlers"
	adminhandlers "github.com/nodirbekm/koreancosmetics/app/handlers/admin"
	"github.com/nodirbekm/koreancosmetics/app/middlewares"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/nodirbekm/koreancosmetics/app/services"
	"github.com/nodirbekm/koreancosmetics/app/utils/renderer"
	"github.com/nodirbekm/koreancosmetics/app/utils/sessions"
	"gorm.io/gorm"
)

// NewRouter wires the whole application: repositories, services, the JSON
// API under /api, the admin console under /admin, static/media serving and
// the SPA fallback for everything else.
func NewRouter(db *gorm.DB, env configs.ENV) (http.Handler, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load session keys: %w", err)
	}

	csrfKey, err := base64.URLEncoding.DecodeString(env.CSRFKey)
	if err != nil || len(csrfKey) != 32 {
		return nil, fmt.Errorf("CSRF_KEY must be 32 base64-encoded bytes")
	}

	if env.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	jwtSecret := []byte(env.JWTSecret)

	rnd := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieStore(keys.AuthKey, keys.EncKey)

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	userRepo := repositories.NewUserRepository(db)

	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	profileSvc := services.NewProfileService(db, profileRepo, sessionStore)
	orderSvc := services.NewOrderService(db, orderRepo, profileRepo, userRepo, notificationRepo, mailer, env.StaffEmail)

	categoryHandler := handlers.NewCategoryHandler(rnd, categoryRepo)
	productHandler := handlers.NewProductHandler(rnd, productRepo)
	newsHandler := handlers.NewNewsHandler(rnd, newsRepo)
	profileHandler := handlers.NewProfileHandler(rnd, profileSvc, validate)
	orderHandler := handlers.NewOrderHandler(rnd, orderSvc)
	notificationHandler := handlers.NewNotificationHandler(rnd, notificationRepo)
	authHandler := handlers.NewAuthHandler(rnd, userRepo, validate, jwtSecret)

	adminAuth := adminhandlers.NewAuthHandler(rnd, userRepo, sessionStore)
	adminDashboard := adminhandlers.NewDashboardHandler(rnd, productRepo, categoryRepo, orderRepo, notificationRepo, newsRepo)
	adminProducts := adminhandlers.NewProductHandler(rnd, productRepo, categoryRepo, validate)
	adminCategories := adminhandlers.NewCategoryHandler(rnd, categoryRepo)
	adminNews := adminhandlers.NewNewsHandler(rnd, newsRepo)
	adminOrders := adminhandlers.NewOrderHandler(rnd, orderRepo)
	adminNotifications := adminhandlers.NewNotificationHandler(rnd, notificationRepo)

	router := mux.NewRouter()
	router.Use(middlewares.BearerAuthMiddleware(jwtSecret))

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories/", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/{slug}/", categoryHandler.Detail).Methods("GET")
	api.HandleFunc("/products/", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}/", productHandler.Detail).Methods("GET")
	api.HandleFunc("/news/", newsHandler.List).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}/", newsHandler.Detail).Methods("GET")
	api.HandleFunc("/profile/", profileHandler.Get).Methods("GET")
	api.HandleFunc("/profile/", profileHandler.Post).Methods("POST")
	api.HandleFunc("/profile/", profileHandler.Delete).Methods("DELETE")
	api.HandleFunc("/orders/", orderHandler.Create).Methods("POST")
	api.HandleFunc("/notifications/", middlewares.RequireAuth(notificationHandler.List)).Methods("GET")
	api.HandleFunc("/notifications/{id:[0-9]+}/read", middlewares.RequireAuth(notificationHandler.MarkRead)).Methods("POST")
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/csrf/", handlers.CSRFCookie(rnd)).Methods("GET")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.HandleFunc("/login", adminAuth.LoginGet).Methods("GET")
	adminRouter.HandleFunc("/login", adminAuth.LoginPost).Methods("POST")
	adminRouter.HandleFunc("/logout", adminAuth.Logout).Methods("POST")

	console := adminRouter.PathPrefix("/").Subrouter()
	console.Use(middlewares.AdminAuthMiddleware(userRepo, sessionStore))
	console.HandleFunc("/", adminDashboard.Dashboard).Methods("GET")
	console.HandleFunc("/products", adminProducts.List).Methods("GET")
	console.HandleFunc("/products/new", adminProducts.NewForm).Methods("GET")
	console.HandleFunc("/products", adminProducts.Create).Methods("POST")
	console.HandleFunc("/products/{id:[0-9]+}/edit", adminProducts.EditForm).Methods("GET")
	console.HandleFunc("/products/{id:[0-9]+}", adminProducts.Update).Methods("POST")
	console.HandleFunc("/products/{id:[0-9]+}/delete", adminProducts.Delete).Methods("POST")
	console.HandleFunc("/categories", adminCategories.List).Methods("GET")
	console.HandleFunc("/categories", adminCategories.Create).Methods("POST")
	console.HandleFunc("/categories/{id:[0-9]+}", adminCategories.Update).Methods("POST")
	console.HandleFunc("/categories/{id:[0-9]+}/delete", adminCategories.Delete).Methods("POST")
	console.HandleFunc("/news", adminNews.List).Methods("GET")
	console.HandleFunc("/news/new", adminNews.NewForm).Methods("GET")
	console.HandleFunc("/news", adminNews.Create).Methods("POST")
	console.HandleFunc("/news/{id:[0-9]+}/edit", adminNews.EditForm).Methods("GET")
	console.HandleFunc("/news/{id:[0-9]+}", adminNews.Update).Methods("POST")
	console.HandleFunc("/news/{id:[0-9]+}/delete", adminNews.Delete).Methods("POST")
	console.HandleFunc("/orders", adminOrders.List).Methods("GET")
	console.HandleFunc("/orders/{id:[0-9]+}", adminOrders.Detail).Methods("GET")
	console.HandleFunc("/notifications", adminNotifications.List).Methods("GET")
	console.HandleFunc("/notifications/{id:[0-9]+}/read", adminNotifications.MarkRead).Methods("POST")

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	router.PathPrefix("/media/").Handler(http.StripPrefix("/media/", http.FileServer(http.Dir("media"))))

	// Everything that is not admin, api or a file goes to the SPA shell.
	router.PathPrefix("/").HandlerFunc(handlers.SPAFallback("static/index.html")).Methods("GET")

	csrfMiddleware := csrf.Protect(csrfKey, csrf.Secure(false), csrf.Path("/"))
	return middlewares.CSRFExemptMiddleware(csrfMiddleware(router)), nil
}
