package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"busbooking/internal/database"
	"busbooking/internal/domain"
	"busbooking/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "busbooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// cleanup in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM tickets")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM cards")
	db.Exec("DELETE FROM seats")
	db.Exec("DELETE FROM expeditions")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM cities")

	ctx := context.Background()
	cities := repository.NewCityRepository(db)
	companies := repository.NewCompanyRepository(db)
	customers := repository.NewCustomerRepository(db)
	expeditions := repository.NewExpeditionRepository(db)
	cards := repository.NewCardRepository(db)

	log.Println("Creating cities...")
	cityNames := []string{"Almaty", "Astana", "Shymkent", "Karaganda", "Taraz"}
	cityIDs := make(map[string]int64, len(cityNames))
	for _, name := range cityNames {
		c := domain.City{Name: name}
		if err := cities.Create(ctx, &c); err != nil {
			log.Fatal("city seed failed:", err)
		}
		cityIDs[name] = c.ID
	}

	log.Println("Creating companies...")
	companyHash := mustHash("company123")
	nomad := domain.Company{Name: "Nomad Lines", Email: "ops@nomadlines.kz", PasswordHash: companyHash}
	if err := companies.Create(ctx, &nomad); err != nil {
		log.Fatal("company seed failed:", err)
	}
	steppe := domain.Company{Name: "Steppe Express", Email: "ops@steppe.kz", PasswordHash: companyHash}
	if err := companies.Create(ctx, &steppe); err != nil {
		log.Fatal("company seed failed:", err)
	}

	log.Println("Creating customers...")
	customerHash := mustHash("customer123")
	aigerim := domain.Customer{Email: "aigerim@example.com", PasswordHash: customerHash, Name: "Aigerim Bekova"}
	if err := customers.Create(ctx, &aigerim); err != nil {
		log.Fatal("customer seed failed:", err)
	}
	daniyar := domain.Customer{Email: "daniyar@example.com", PasswordHash: customerHash, Name: "Daniyar Omarov"}
	if err := customers.Create(ctx, &daniyar); err != nil {
		log.Fatal("customer seed failed:", err)
	}

	log.Println("Creating cards...")
	seedCards := []domain.Card{
		{CustomerID: aigerim.ID, CardNumber: "**** **** **** 4242", HolderName: "AIGERIM BEKOVA", Expiry: "12/27", IsActive: true},
		{CustomerID: aigerim.ID, CardNumber: "**** **** **** 1881", HolderName: "AIGERIM BEKOVA", Expiry: "03/25", IsActive: false},
		{CustomerID: daniyar.ID, CardNumber: "**** **** **** 7001", HolderName: "DANIYAR OMAROV", Expiry: "09/28", IsActive: true},
	}
	for i := range seedCards {
		if err := cards.Create(ctx, &seedCards[i]); err != nil {
			log.Fatal("card seed failed:", err)
		}
	}

	log.Println("Creating expeditions...")
	now := time.Now().UTC()
	seedExpeditions := []domain.Expedition{
		{
			CompanyID:       nomad.ID,
			DepartureCityID: cityIDs["Almaty"],
			ArrivalCityID:   cityIDs["Astana"],
			DepartureTime:   now.Add(48 * time.Hour),
			Price:           7500,
			DurationHours:   14,
			Capacity:        40,
		},
		{
			CompanyID:       nomad.ID,
			DepartureCityID: cityIDs["Almaty"],
			ArrivalCityID:   cityIDs["Shymkent"],
			DepartureTime:   now.Add(72 * time.Hour),
			Price:           4200,
			DurationHours:   10,
			Capacity:        30,
		},
		{
			CompanyID:       steppe.ID,
			DepartureCityID: cityIDs["Karaganda"],
			ArrivalCityID:   cityIDs["Taraz"],
			DepartureTime:   now.Add(96 * time.Hour),
			Price:           5600,
			DurationHours:   12,
			Capacity:        45,
		},
	}
	for i := range seedExpeditions {
		if err := expeditions.CreateWithSeats(ctx, &seedExpeditions[i]); err != nil {
			log.Fatal("expedition seed failed:", err)
		}
	}

	log.Printf("Seed completed: cities=%d companies=2 customers=2 cards=%d expeditions=%d",
		len(cityNames), len(seedCards), len(seedExpeditions))
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	return string(hash)
}
