package routes

import (
	"net/http"
	"time"

	"blogcms/internal/config"
	"blogcms/internal/handlers"
	"blogcms/internal/middleware"
	"blogcms/internal/utils/helpers"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	articleHandler *handlers.ArticleHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	jwtAuth mux.MiddlewareFunc,
	articleGuard func(http.Handler) http.Handler,
	commentGuard func(http.Handler) http.Handler,
	authRateWindow time.Duration,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Аутентификация (с лимитом на перебор) ---
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RateLimit(cfg.AuthRateLimit, authRateWindow))
	auth.HandleFunc("/register-pending", authHandler.RegisterPending).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Публичные маршруты ---
	api.HandleFunc("/articles", articleHandler.GetAll).Methods("GET")
	api.HandleFunc("/articles/{id:[0-9]+}", articleHandler.GetByID).Methods("GET")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.List).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(jwtAuth)

	protected.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	protected.HandleFunc("/articles/{id:[0-9]+}/like", articleHandler.ToggleLike).Methods("POST")
	protected.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Add).Methods("POST")

	protected.HandleFunc("/users/profile", userHandler.Profile).Methods("GET")
	protected.HandleFunc("/users/profile", userHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/users/password", userHandler.ChangePassword).Methods("PUT")

	// Правка и удаление статьи — только автор или админ
	articles := protected.PathPrefix("/articles").Subrouter()
	articles.Use(articleGuard)
	articles.HandleFunc("/{id:[0-9]+}", articleHandler.Update).Methods("PUT")
	articles.HandleFunc("/{id:[0-9]+}", articleHandler.Delete).Methods("DELETE")

	comments := protected.PathPrefix("/comments").Subrouter()
	comments.Use(commentGuard)
	comments.HandleFunc("/{id:[0-9]+}", commentHandler.Update).Methods("PUT")
	comments.HandleFunc("/{id:[0-9]+}", commentHandler.Delete).Methods("DELETE")

	// --- Управление пользователями (админ) ---
	adminUsers := protected.PathPrefix("/users").Subrouter()
	adminUsers.Use(middleware.OnlyRole("admin"))
	adminUsers.HandleFunc("", userHandler.ListUsers).Methods("GET")
	adminUsers.HandleFunc("/{id:[0-9]+}/role", userHandler.ChangeRole).Methods("PUT")
	adminUsers.HandleFunc("/{id:[0-9]+}", userHandler.DeleteUser).Methods("DELETE")

	// --- Заявки на регистрацию (админ) ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))
	admin.HandleFunc("/pending-users", adminHandler.GetPendingUsers).Methods("GET")
	admin.HandleFunc("/approve/{id:[0-9]+}", adminHandler.ApproveUser).Methods("POST")
	admin.HandleFunc("/reject/{id:[0-9]+}", adminHandler.RejectUser).Methods("DELETE")

	// --- Статика загрузок ---
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	router.PathPrefix("/uploads/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// картинки встраиваются на страницы другого origin
		w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		uploads.ServeHTTP(w, r)
	}))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "Эндпоинт не найден.")
	})
}
