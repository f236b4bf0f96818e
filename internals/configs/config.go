package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret         string
	AllowedOrigins    []string
	ResendAPIKey      string
	NotifyEmailFrom   string
	NotifyEmailTo     string
	MidtransServerKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Pas de fichier .env, on utilise les ENV du système")
		} else {
			log.Println("✅ .env chargé")
		}
	} else {
		log.Println("🚀 Running in Railway, ENV du système")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	ResendAPIKey = GetEnv("RESEND_API_KEY")
	NotifyEmailFrom = GetEnv("NOTIFY_EMAIL_FROM", "EGOEJO <notifications@egoejo.org>")
	NotifyEmailTo = GetEnv("NOTIFY_EMAIL_TO")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	AllowedOrigins = splitOrigins(GetEnv("ALLOWED_ORIGINS",
		"http://localhost:5173,https://egoejo.org,https://www.egoejo.org"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET manquant (routes admin indisponibles)")
	}
	if ResendAPIKey == "" {
		log.Println("⚠️ RESEND_API_KEY manquant, notifications email désactivées")
	}
	log.Printf("✅ %d origines autorisées", len(AllowedOrigins))
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// OriginAllowed: compare l'Origin du navigateur à la liste ALLOWED_ORIGINS.
func OriginAllowed(origin string) bool {
	for _, o := range AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.TrimSuffix(p, "/"))
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
