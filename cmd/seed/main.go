// Command main runs the database seeder for Newsdesk.
package main

import (
	"flag"
	"log"

	"newsdesk/internal/config"
	"newsdesk/internal/database"
	"newsdesk/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of generated users on top of the fixtures")
	numArticles := flag.Int("articles", 100, "Number of generated articles")
	numComments := flag.Int("comments", 400, "Number of generated comments")
	fixturesOnly := flag.Bool("fixtures-only", false, "Apply only the deterministic fixtures")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.Clear(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *fixturesOnly {
		fixtures, err := seed.LoadFixtures()
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := seed.Apply(db, fixtures); err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
		log.Println("Fixtures applied.")
		return
	}

	if err := seed.Generate(db, seed.Options{
		NumUsers:    *numUsers,
		NumArticles: *numArticles,
		NumComments: *numComments,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded.")
}
