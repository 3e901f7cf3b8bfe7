// Command generate_demo creates a fresh SQLite database holding only the
// sample catalogue.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/learnhub/internal/config"
	"github.com/mrlokans/learnhub/internal/demo"
	"github.com/mrlokans/learnhub/internal/entrypoint"
	"github.com/mrlokans/learnhub/internal/logger"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	cfg := &config.Config{
		Storage:  config.Storage{Backend: config.StorageSQLite},
		Database: config.Database{Path: *dbPath},
	}
	app, err := entrypoint.Open(cfg, logger.NewNop())
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer app.Close()

	if _, err := demo.Seed(app.Store, app.Log); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	courses, err := app.Catalog.CourseSummaries()
	if err != nil {
		log.Fatalf("Failed to read courses: %v", err)
	}
	for _, c := range courses {
		log.Printf("Saved: %s (%d lessons, %d enrolled)", c.Course.Title, c.LessonCount, c.EnrollmentCount)
	}
	log.Printf("Demo database ready. Sign in as %s or %s", demo.InstructorEmail, demo.StudentEmail)
}
