package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookceleb/internal/admins"
	"bookceleb/internal/celebrities"
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/database"
)

// Seeds the celebrity catalog and, when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set, a bootstrap admin account.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := seedCelebrities(ctx, db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to seed celebrities: %v", err)
	}

	if err := seedAdmin(ctx, db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	log.Println("Seeding completed")
}

func seedCelebrities(ctx context.Context, db *gorm.DB) error {
	seeds := []celebrities.Celebrity{
		{
			Name:            "Dustin Lynch",
			Image:           "/images/dustin-lynch.jpg",
			Description:     "Country music singer and songwriter known for chart-topping hits.",
			FullDescription: "Dustin Lynch is an American country music singer and songwriter with multiple platinum singles and a reputation for high-energy live shows. Available for private performances, festivals and corporate events.",
			Category:        "Musician",
			FeeRange:        "$50,000 - $100,000",
			Availability:    true,
		},
		{
			Name:            "Zac Efron",
			Image:           "/images/zac-efron.jpg",
			Description:     "Actor and producer known for film and television roles.",
			FullDescription: "Zac Efron is an American actor and producer whose career spans musicals, comedies and dramas. Available for appearances, meet and greets and speaking engagements.",
			Category:        "Actor",
			FeeRange:        "$100,000 - $500,000",
			Availability:    true,
		},
	}

	for _, seed := range seeds {
		var count int64
		if err := db.WithContext(ctx).
			Model(&celebrities.Celebrity{}).
			Where("name = ?", seed.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Celebrity %q already exists, skipping", seed.Name)
			continue
		}

		if err := db.WithContext(ctx).Create(&seed).Error; err != nil {
			return err
		}
		log.Printf("Seeded celebrity %q", seed.Name)
	}

	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&admins.Profile{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin %q already exists, skipping", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profile := &admins.Profile{
		Email:    email,
		FullName: getEnvOrDefault("SEED_ADMIN_NAME", "Site Operator"),
		Password: string(hashed),
		Role:     admins.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account %q", email)
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
