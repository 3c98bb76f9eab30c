package main

import (
	"flag"
	"log"

	"github.com/CampusCore/ERP-Backend/internal/auth"
	"github.com/CampusCore/ERP-Backend/internal/config"
	"github.com/CampusCore/ERP-Backend/internal/db"
	"github.com/CampusCore/ERP-Backend/internal/seeds"
	"github.com/CampusCore/ERP-Backend/internal/students"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "seeds/demo.yaml", "path to the seed manifest")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	cfg := config.Load()
	db.Connect()

	auth.Init(cfg.SessionTTL)
	students.Init()

	manifest, err := seeds.Load(*file)
	if err != nil {
		log.Fatal("Failed to load seed manifest: ", err)
	}

	if err := seeds.Apply(db.DB, manifest); err != nil {
		log.Fatal("Failed to apply seeds: ", err)
	}

	log.Println("Seeding complete")
}
