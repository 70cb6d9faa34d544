package app

import (
	"time"

	"blogcms/internal/config"
	"blogcms/internal/db"
	"blogcms/internal/handlers"
	"blogcms/internal/middleware"
	"blogcms/internal/repository"
	"blogcms/internal/routes"
	"blogcms/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	pendingRepo := repository.NewPendingUserRepository(conn)
	articleRepo := repository.NewArticleRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	sanitizer := services.NewSanitizer()
	storage, err := services.NewStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		tokenTTL = 24 * time.Hour
	}
	rateWindow, err := time.ParseDuration(cfg.AuthRateWindow)
	if err != nil {
		rateWindow = 15 * time.Minute
	}

	// Сервисы
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(userRepo, pendingRepo, sanitizer, cfg.JWTSecret, tokenTTL)
	articleService := services.NewArticleService(articleRepo, commentRepo, userRepo, storage, sanitizer)
	commentService := services.NewCommentService(commentRepo, articleRepo, sanitizer)
	userService := services.NewUserService(userRepo, sanitizer)

	for i := 0; i < 3; i++ {
		go services.StartEmailWorker(emailService)
	}

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	adminHandler := handlers.NewAdminHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, storage)
	commentHandler := handlers.NewCommentHandler(commentService)
	userHandler := handlers.NewUserHandler(userService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(
		router,
		cfg,
		authHandler,
		adminHandler,
		articleHandler,
		commentHandler,
		userHandler,
		middleware.JWTAuth(cfg.JWTSecret, userRepo),
		middleware.ArticleOwnerOrAdmin(articleRepo),
		middleware.CommentOwnerOrAdmin(commentRepo),
		rateWindow,
	)

	return router, nil
}
