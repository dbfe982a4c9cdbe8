package main

import (
	"context"

	authhandler "paintbooking/internal/auth/handler"
	authrepository "paintbooking/internal/auth/repository"
	authservice "paintbooking/internal/auth/service"
	authvalidator "paintbooking/internal/auth/validator"
	bookinghandler "paintbooking/internal/bookings/handler"
	bookingrepository "paintbooking/internal/bookings/repository"
	bookingservice "paintbooking/internal/bookings/service"
	bookingvalidator "paintbooking/internal/bookings/validator"
	pageshandler "paintbooking/internal/pages/handler"
	"paintbooking/pkg/app"
	"paintbooking/pkg/config"
	"paintbooking/pkg/contracts"
	"paintbooking/pkg/events"
	"paintbooking/pkg/hasher"
	"paintbooking/pkg/session"
)

const ServiceName = "web"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting booking website")

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	sessions := session.NewStore(cfg.SessionTTL)

	serverApp := app.NewApplication(cfg, sessions, publisher)
	serverApp.SetApp(initHandlers(cfg, sessions, publisher)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, sessions *session.Store, publisher events.Publisher) []contracts.Handler {
	userRepo := authrepository.NewMongoUserRepository(cfg)
	ensureIndexes(cfg, userRepo)

	authService := authservice.NewAuthService(
		userRepo,
		hasher.NewBcryptHasher(cfg.BcryptCost),
		authvalidator.NewUserValidator(cfg.Log),
		publisher,
		cfg,
	)

	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		pageshandler.NewPagesHandler(cfg.StaticDir, sessions, cfg.Log),
		authhandler.NewAuthHandler(authService, sessions, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	}
}

func ensureIndexes(cfg *config.Config, userRepo authrepository.UserRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to ensure user indexes", "error", err)
	}
}
