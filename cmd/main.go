package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	cancelReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_reservation"
	cancelSubscriptionHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/cancel_subscription"
	createFavoriteHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_favorite"
	createReservationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_reservation"
	createSubscriptionHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_subscription"
	deleteFavoriteHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/delete_favorite"
	getRestaurantHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_restaurant"
	getUserFavoritesHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_favorites"
	getUserReservationsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_user_reservations"
	searchRestaurantsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/search_restaurants"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	favoriteRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/favorite"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	billingClient "github.com/m04kA/SMC-RestaurantService/internal/integrations/billing"
	userServiceClient "github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
	favoritesService "github.com/m04kA/SMC-RestaurantService/internal/service/favorites"
	reservationsService "github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	restaurantsService "github.com/m04kA/SMC-RestaurantService/internal/service/restaurants"
	subscriptionsService "github.com/m04kA/SMC-RestaurantService/internal/service/subscriptions"
	createReservationUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	searchRestaurantsUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/search_restaurants"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RestaurantService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	billing := billingClient.NewClient(
		cfg.Billing.URL,
		time.Duration(cfg.Billing.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, Billing=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.Billing.URL, cfg.Billing.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		restaurantRepository  *restaurantRepo.Repository
		reservationRepository *reservationRepo.Repository
		favoriteRepository    *favoriteRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		favoriteRepository = favoriteRepo.NewRepository(wrappedDB)
	} else {
		restaurantRepository = restaurantRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		favoriteRepository = favoriteRepo.NewRepository(db)
	}

	// Точка отсчёта для расстояний и границы пагинации
	reference := domain.Coordinates{
		Latitude:  cfg.Search.ReferenceLatitude,
		Longitude: cfg.Search.ReferenceLongitude,
	}
	pageDefaults := handlers.PageDefaults{
		DefaultSize: cfg.Search.DefaultPageSize,
		MaxSize:     cfg.Search.MaxPageSize,
	}

	// Инициализируем сервисы
	restaurantSvc := restaurantsService.NewService(restaurantRepository, reference, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	favoriteSvc := favoritesService.NewService(favoriteRepository, restaurantRepository, log)
	subscriptionSvc := subscriptionsService.NewService(billing, userClient, cfg.Billing.PriceID, log)

	// Инициализируем use cases
	searchRestaurantsUseCase := searchRestaurantsUC.NewUseCase(
		restaurantRepository,
		searchRestaurantsUC.PageConfig{
			DefaultSize: cfg.Search.DefaultPageSize,
			MaxSize:     cfg.Search.MaxPageSize,
		},
		reference,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		log,
	)

	// Инициализируем handlers
	searchRestaurants := searchRestaurantsHandler.NewHandler(searchRestaurantsUseCase, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, pageDefaults, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	createFavorite := createFavoriteHandler.NewHandler(favoriteSvc, log)
	getUserFavorites := getUserFavoritesHandler.NewHandler(favoriteSvc, pageDefaults, log)
	deleteFavorite := deleteFavoriteHandler.NewHandler(favoriteSvc, log)
	createSubscription := createSubscriptionHandler.NewHandler(subscriptionSvc, log)
	cancelSubscription := cancelSubscriptionHandler.NewHandler(subscriptionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск ресторанов
	api.HandleFunc("/restaurants", searchRestaurants.Handle).Methods(http.MethodGet)

	// Карточка ресторана
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	auth := middleware.NewAuth(userClient, log)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// --- Брони ---
	// Создание брони столика
	protected.HandleFunc("/restaurants/{restaurantId}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// История броней пользователя
	protected.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Избранное ---
	// Добавление ресторана в избранное
	protected.HandleFunc("/restaurants/{restaurantId}/favorites", createFavorite.Handle).Methods(http.MethodPost)

	// Избранное пользователя
	protected.HandleFunc("/favorites", getUserFavorites.Handle).Methods(http.MethodGet)

	// Удаление из избранного
	protected.HandleFunc("/favorites/{favoriteId}", deleteFavorite.Handle).Methods(http.MethodDelete)

	// --- Подписка ---
	// Оформление платной подписки
	protected.HandleFunc("/subscription", createSubscription.Handle).Methods(http.MethodPost)

	// Отмена подписки
	protected.HandleFunc("/subscription", cancelSubscription.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
