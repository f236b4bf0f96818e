package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"egoejo_backend/internals/configs"
	checkoutModel "egoejo_backend/internals/features/checkout/model"
	intentModel "egoejo_backend/internals/features/intents/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connexion à PostgreSQL (Supabase)...")

	// DSN complet + statement_timeout côté serveur
	// Note: avec PgBouncer (port 6543), laisser PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=egoejo&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 compatible PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Connexion DB impossible: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// ⚖️ Aligné sur les limites Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crée les tables manquantes; l'index unique (email, jour)
// des intentions vit ici, c'est lui qui garantit 1 soumission/jour.
func Migrate() {
	if err := DB.AutoMigrate(
		&intentModel.IntentModel{},
		&checkoutModel.CheckoutModel{},
	); err != nil {
		log.Fatalf("❌ Migration impossible: %v", err)
	}
	log.Println("✅ Migrations OK.")
}

func WarmUpQueries() {
	// ping léger pour remplir le pool avant le premier vrai trafic
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
