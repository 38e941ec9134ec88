package main

import (
	"log"
	"os"
	"time"

	"busbooking/internal/database"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res := db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	if res.Error != nil {
		log.Fatalf("cleanup sessions failed: %v", res.Error)
	}

	log.Printf("session cleanup completed: sessions=%d", res.RowsAffected)
}
