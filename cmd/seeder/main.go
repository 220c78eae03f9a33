// Schema setup: applies the static DDL and seeds the two scrape_types rows.
// Campaigns and clients are provisioned by the CRM, never here.
package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var migrationFiles = []string{
	"infrastructure/migration/schema.sql",
	"infrastructure/migration/seed_scrape_types.sql",
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting schema setup...")

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("ERROR connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERROR pinging database: %v", err)
	}
	log.Println("Database connection established")

	startTime := time.Now()

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("ERROR reading %s: %v", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("ERROR executing %s: %v", file, err)
		}
		log.Printf("Applied: %s", file)
	}

	log.Printf("Schema setup finished in %v", time.Since(startTime))
}
