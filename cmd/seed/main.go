// Command main runs the database seeder for Help Hub.
package main

import (
	"flag"
	"log"

	"helphub/internal/config"
	"helphub/internal/database"
	"helphub/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 0, "Number of demo users to create (each with an opportunity and a resource)")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	fast := flag.Bool("fast", false, "Use the minimum bcrypt cost for demo passwords")
	flag.Parse()

	log.Println("Help Hub database seeder")
	log.Printf("Target: %d demo users, clean=%v\n", *numUsers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.ClearAll(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seed.Tips(db); err != nil {
		log.Fatalf("Default tip seeding failed: %v", err)
	}

	if *numUsers > 0 {
		f := seed.NewFactory(db, seed.Options{SkipBcrypt: *fast})
		if _, err := f.Demo(*numUsers); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
		log.Printf("All demo users have the password: %s", seed.DemoPassword)
	}

	log.Println("Done.")
}
