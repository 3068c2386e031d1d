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

	cancelReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/cancel_reservation"
	completeReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/complete_reservation"
	confirmReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/get_reservation"
	getServiceCatalogHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/get_service_catalog"
	getUserReservationsHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/get_user_reservations"
	quoteHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/quote"
	startReservationHandler "github.com/vitrineapp/VA-BookingService/internal/api/handlers/start_reservation"
	"github.com/vitrineapp/VA-BookingService/internal/api/middleware"
	"github.com/vitrineapp/VA-BookingService/internal/calendar"
	"github.com/vitrineapp/VA-BookingService/internal/config"
	"github.com/vitrineapp/VA-BookingService/internal/domain"
	reservationRepo "github.com/vitrineapp/VA-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/vitrineapp/VA-BookingService/internal/infra/storage/slot"
	"github.com/vitrineapp/VA-BookingService/internal/pricing"
	"github.com/vitrineapp/VA-BookingService/internal/registry"
	reservationsService "github.com/vitrineapp/VA-BookingService/internal/service/reservations"
	createReservationUC "github.com/vitrineapp/VA-BookingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/vitrineapp/VA-BookingService/internal/usecase/get_available_slots"
	quoteUC "github.com/vitrineapp/VA-BookingService/internal/usecase/quote"
	"github.com/vitrineapp/VA-BookingService/pkg/dbmetrics"
	"github.com/vitrineapp/VA-BookingService/pkg/logger"
	"github.com/vitrineapp/VA-BookingService/pkg/metrics"
	"github.com/vitrineapp/VA-BookingService/pkg/simpletxmanager"
	"github.com/vitrineapp/VA-BookingService/pkg/txmanager"
	"github.com/vitrineapp/VA-BookingService/pkg/types"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VA-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Service catalog
	catalogOverrides, err := toDomainServices(cfg.Services)
	if err != nil {
		log.Fatal("Failed to parse service catalog: %v", err)
	}
	serviceCatalog, err := registry.New(catalogOverrides)
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	log.Info("Service catalog initialized (%d verticals)", len(serviceCatalog.All()))

	// Pricing
	pricingEngine := pricing.NewEngine()
	ruleSet := pricing.NewRuleSet(toScopedRules(cfg.PricingRules))
	log.Info("Pricing engine initialized (%d configured rules)", len(cfg.PricingRules))

	// Repositories and transaction manager (with or without metrics)
	var (
		reservationRepository *reservationRepo.Repository
		slotRepository        *slotRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Slot calendar: authoritative in-memory state, seeded from storage,
	// falling back to the configured slot plans.
	slotCalendar := calendar.New()
	if err := seedCalendar(context.Background(), slotCalendar, slotRepository, cfg.SlotPlans, log); err != nil {
		log.Fatal("Failed to seed slot calendar: %v", err)
	}

	// Services
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		slotCalendar,
		slotRepository,
		log,
	)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		slotCalendar,
		serviceCatalog,
		pricingEngine,
		ruleSet,
		reservationRepository,
		slotRepository,
		txMgr,
		log,
	)
	quoteUseCase := quoteUC.NewUseCase(
		slotCalendar,
		serviceCatalog,
		pricingEngine,
		ruleSet,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotCalendar,
		serviceCatalog,
		log,
	)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	quote := quoteHandler.NewHandler(quoteUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServiceCatalog := getServiceCatalogHandler.NewHandler(serviceCatalog, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	startReservation := startReservationHandler.NewHandler(reservationSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/services", getServiceCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quote.Handle).Methods(http.MethodPost)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/start", startReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

// toDomainServices converts the configured catalog overrides.
func toDomainServices(services []config.ServiceConfig) ([]domain.ServiceConfig, error) {
	configs := make([]domain.ServiceConfig, 0, len(services))
	for _, s := range services {
		serviceType, ok := domain.ParseServiceType(s.Type)
		if !ok {
			return nil, fmt.Errorf("unknown service type %q", s.Type)
		}
		configs = append(configs, domain.ServiceConfig{
			ID:          s.ID,
			Name:        s.Name,
			Type:        serviceType,
			Template:    domain.Template(s.Template),
			Features:    s.Features,
			BookingFlow: domain.BookingFlow(s.BookingFlow),
			HasMenu:     s.HasMenu,
			HasGallery:  s.HasGallery,
			HasReviews:  s.HasReviews,
		})
	}
	return configs, nil
}

// toScopedRules converts the configured pricing rules. Rules without a
// service_id apply to every service.
func toScopedRules(rules []config.PricingRuleConfig) []pricing.ScopedRule {
	scoped := make([]pricing.ScopedRule, 0, len(rules))
	for _, r := range rules {
		scoped = append(scoped, pricing.ScopedRule{
			ServiceID: r.ServiceID,
			Rule: domain.PricingRule{
				ID:         r.ID,
				Condition:  r.Condition,
				Multiplier: r.Multiplier,
			},
		})
	}
	return scoped
}

// seedCalendar fills the in-memory calendar from the database, falling
// back to the configured slot plans when the time_slots table is empty.
// Plan-sourced slots are persisted so later restarts take the database
// path.
func seedCalendar(ctx context.Context, cal *calendar.Calendar, store *slotRepo.Repository, plans []config.SlotPlanConfig, log *logger.Logger) error {
	stored, err := store.LoadAll(ctx)
	if err != nil {
		log.Warn("Failed to load slots from storage, falling back to configured plans: %v", err)
	}

	if len(stored) > 0 {
		for _, s := range stored {
			if err := cal.Put(s); err != nil {
				return fmt.Errorf("seed slot %s: %w", s.ID, err)
			}
		}
		log.Info("Slot calendar seeded from storage (%d slots)", len(stored))
		return nil
	}

	seeded := 0
	for _, plan := range plans {
		date, err := time.Parse(domain.DateFormat, plan.Date)
		if err != nil {
			return fmt.Errorf("slot plan for service %s: invalid date %q: %w", plan.ServiceID, plan.Date, err)
		}
		for _, t := range plan.Times {
			startTime, err := types.NewTimeStringFromString(t)
			if err != nil {
				return fmt.Errorf("slot plan for service %s: invalid time %q: %w", plan.ServiceID, t, err)
			}
			slot := domain.TimeSlot{
				ID:              domain.SlotID(plan.ServiceID, date, startTime),
				ServiceID:       plan.ServiceID,
				Date:            date,
				StartTime:       startTime,
				Available:       true,
				BasePrice:       domain.Money(plan.BasePrice),
				DurationMinutes: plan.DurationMinutes,
			}
			if err := cal.Put(slot); err != nil {
				return fmt.Errorf("seed slot %s: %w", slot.ID, err)
			}
			if err := store.Create(ctx, &slot); err != nil {
				log.Warn("Failed to persist seeded slot %s: %v", slot.ID, err)
			}
			seeded++
		}
	}
	log.Info("Slot calendar seeded from configured plans (%d slots)", seeded)
	return nil
}
