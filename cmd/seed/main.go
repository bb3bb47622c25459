package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aeronest.backend/internal/config"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/models"
	"aeronest.backend/internal/infrastructure/repositories"
	"aeronest.backend/pkg/crypto"
	"aeronest.backend/pkg/utils"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return seed(context.Background(), db)
}

// seed migrates the schema and inserts the baseline data. Safe to run
// repeatedly: existing rows are kept as is.
func seed(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.DeliveryAddress{},
		&models.Order{},
		&models.Referral{},
		&models.ReferralUse{},
		&models.CatalogEntry{},
		&models.Item{},
		&models.Partner{},
		&models.Account{},
		&models.Session{},
		&models.VerificationToken{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := seedAdmin(ctx, db); err != nil {
		return err
	}
	return seedCatalog(ctx, db)
}

// seedAdmin creates the back-office account and its welcome referral
// code when they do not exist yet.
func seedAdmin(ctx context.Context, db *gorm.DB) error {
	userRepo := repositories.NewUserRepository(db)
	referralRepo := repositories.NewReferralRepository(db)

	email := getEnv("ADMIN_EMAIL", "admin@aeronest.ru")
	admin, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		hash, hashErr := crypto.HashPassword(getEnv("ADMIN_PASSWORD", "ChangeMe123!"))
		if hashErr != nil {
			return hashErr
		}
		admin = &entities.User{
			ID:           utils.GenerateUUIDv7(),
			Email:        email,
			Name:         null.StringFrom("Админ"),
			PasswordHash: hash,
			Role:         entities.UserRoleAdmin,
			Balance:      decimal.Zero,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("created admin user %s", email)
	} else if err != nil {
		return err
	}

	code := getEnv("SEED_REFERRAL_CODE", "WELCOME")
	if _, err := referralRepo.GetByCode(ctx, code); errors.Is(err, domainerrors.ErrNotFound) {
		referral := &entities.Referral{
			ID:      utils.GenerateUUIDv7(),
			RefCode: code,
			UserID:  admin.ID,
			Date:    time.Now(),
		}
		if err := referralRepo.Create(ctx, referral); err != nil {
			return fmt.Errorf("seed referral: %w", err)
		}
		log.Printf("created referral code %s", code)
	} else if err != nil {
		return err
	}
	return nil
}

// seedCatalog inserts the storefront demo data once
func seedCatalog(ctx context.Context, db *gorm.DB) error {
	catalogRepo := repositories.NewCatalogRepository(db)

	count, err := catalogRepo.CountEntries(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("catalog already seeded (%d entries), skipping", count)
		return nil
	}

	now := time.Now()
	sushi := &entities.CatalogEntry{
		ID:           utils.GenerateUUIDv7(),
		Name:         "Суши Мастер",
		Category:     entities.CatalogCategoryFood,
		MinOrder:     "800",
		DeliveryTime: "25 мин",
		Description:  "Роллы и сеты с доставкой дроном",
	}
	pharmacy := &entities.CatalogEntry{
		ID:           utils.GenerateUUIDv7(),
		Name:         "Аптека 36.6",
		Category:     entities.CatalogCategoryMed,
		MinOrder:     "500",
		DeliveryTime: "15 мин",
		Description:  "Безрецептурные препараты",
	}
	for _, entry := range []*entities.CatalogEntry{sushi, pharmacy} {
		if err := catalogRepo.CreateEntry(ctx, entry); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	items := []*entities.Item{
		{ID: utils.GenerateUUIDv7(), CatalogID: sushi.ID, Name: "Ролл Калифорния",
			Price: decimal.RequireFromString("450.00"), Ves: "220 г", Date: now},
		{ID: utils.GenerateUUIDv7(), CatalogID: sushi.ID, Name: "Сет Филадельфия",
			Price: decimal.RequireFromString("1250.00"), Ves: "640 г", Date: now},
		{ID: utils.GenerateUUIDv7(), CatalogID: pharmacy.ID, Name: "Парацетамол 500мг",
			Price: decimal.RequireFromString("90.00"), Ves: "20 таб", Date: now},
	}
	for _, item := range items {
		if err := catalogRepo.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("seed items: %w", err)
		}
	}

	partners := []*entities.Partner{
		{ID: utils.GenerateUUIDv7(), Name: "АэроПорт Логистика",
			Image: "/partners/aeroport.png", CooperationDate: now,
			Description: "Обслуживание дронопортов"},
		{ID: utils.GenerateUUIDv7(), Name: "Суши Мастер",
			Image: "/partners/sushi-master.png", CooperationDate: now,
			Description: "Флагманский ресторан-партнёр"},
	}
	for _, partner := range partners {
		if err := catalogRepo.CreatePartner(ctx, partner); err != nil {
			return fmt.Errorf("seed partners: %w", err)
		}
	}

	log.Println("catalog seeded")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
