package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"busbooking/internal/config"
	"busbooking/internal/database"
	"busbooking/internal/domain"
	"busbooking/internal/middleware"
	"busbooking/internal/modules/expedition"
	"busbooking/internal/modules/payment"
	"busbooking/internal/modules/reservation"
	"busbooking/internal/modules/seat"
	"busbooking/internal/modules/seatmap"
	"busbooking/internal/modules/session"
	"busbooking/internal/modules/ticket"
	"busbooking/internal/pkg/servicetoken"
	"busbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	cityRepo := repository.NewCityRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	expeditionRepo := repository.NewExpeditionRepository(db)
	seatRepo := repository.NewSeatRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cardRepo := repository.NewCardRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	sessionSvc := session.NewService(sessionRepo, cfg.SessionTTL)
	sessionHandler := session.NewHandler(
		sessionSvc,
		session.NewCustomerCredentials(customerRepo),
		session.NewCompanyCredentials(companyRepo),
	)

	// sessions do not survive a restart
	if purged, err := sessionSvc.ClearAll(context.Background()); err != nil {
		log.Fatalf("session purge failed: %v", err)
	} else {
		log.Printf("startup_session_purge purged=%d", purged)
	}
	go sessionSvc.RunSweeper(context.Background(), cfg.SweepInterval)

	expeditionSvc := expedition.NewService(expeditionRepo, cityRepo)
	expeditionHandler := expedition.NewHandler(expeditionSvc)

	seatSvc := seat.NewService(seatRepo, expeditionRepo, customerRepo)
	seatHandler := seat.NewHandler(seatSvc)

	ticketSvc := ticket.NewService(ticketRepo)
	ticketHandler := ticket.NewHandler(ticketSvc)

	paymentSvc := payment.NewService(paymentRepo, cardRepo)
	paymentHandler := payment.NewHandler(paymentSvc)

	hub := seatmap.NewHub()
	defer hub.Close()
	seatmapHandler := seatmap.NewHandler(hub)

	reservationSvc := reservation.NewService(expeditionSvc, seatSvc, paymentSvc, ticketSvc, hub)
	reservationHandler := reservation.NewHandler(reservationSvc)

	tokens := servicetoken.New(cfg.ServiceTokenSecret, cfg.ServiceTokenTTL)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		sessionHandler.RegisterRoutes(v1)
		expeditionHandler.RegisterPublicRoutes(v1)
		seatmapHandler.RegisterPublicRoutes(v1)

		customer := v1.Group("/")
		customer.Use(middleware.SessionAuth(sessionSvc, domain.SessionCustomer))
		{
			seatHandler.RegisterCustomerRoutes(customer)
			ticketHandler.RegisterCustomerRoutes(customer)
			paymentHandler.RegisterCustomerRoutes(customer)
			reservationHandler.RegisterCustomerRoutes(customer)
		}

		company := v1.Group("/")
		company.Use(middleware.SessionAuth(sessionSvc, domain.SessionCompany))
		{
			expeditionHandler.RegisterCompanyRoutes(company)
			seatHandler.RegisterCompanyRoutes(company)
		}

		internal := v1.Group("/internal")
		internal.Use(middleware.ServiceTokenAuth(tokens))
		{
			paymentHandler.RegisterInternalRoutes(internal)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
