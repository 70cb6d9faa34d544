package main

import (
	"net/http"

	_ "blogcms/docs"
	"blogcms/internal/app"
	"blogcms/internal/config"
	"blogcms/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title BlogCMS API
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @version 1.0
// @description Документация API BlogCMS (регистрация по заявкам, статьи, комментарии, лайки).
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Ошибка загрузки конфига: " + err.Error())
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Ошибка конфигурации", zap.Error(err))
	}
	for _, warn := range warnings {
		logger.Log.Warn("Конфигурация", zap.String("warning", warn))
	}
	logger.Log.Info("Подключение к БД", zap.String("dsn", cfg.GetDSNSafe()))

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Cookie-сессии требуют credentials, а с ними браузер не принимает
	// wildcard-origin, поэтому список явный.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
