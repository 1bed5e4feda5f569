package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/config"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/database"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/handler"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/middleware"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/queue"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/repository"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/router"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis is optional: without it the limiter and cache become
	// no-ops and the desk keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and response cache disabled")
	}

	rooms := repository.NewRoomRepo(db)
	guests := repository.NewGuestRepo(db)
	bookings := repository.NewBookingRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	publisher := queue.NewPublisher()
	bookingSvc := service.NewBookingService(db, rooms, guests, bookings, invoices, publisher)
	roomSvc := service.NewRoomService(rooms)
	guestSvc := service.NewGuestService(guests, bookings)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, users, tokens)
	roomH := handler.NewRoomHandler(roomSvc)
	guestH := handler.NewGuestHandler(guestSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterDesk(e, roomH, guestH, bookingH, cfg.JWTSecret,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterAdmin(e, roomH, cfg.JWTSecret)

	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
