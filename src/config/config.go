package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config collects every env-backed setting read at startup.
type Config struct {
	ServerHost string
	DatabaseDSN string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailSender   string

	// A loan is overdue once its loan date is more than OverdueLoanDays ago.
	OverdueLoanDays int
	SweepCron       string

	CORSOrigins []string

	SeedDB bool
}

func Load() Config {
	cfg := Config{
		ServerHost:      getEnv("SERVER_HOST", ":8080"),
		DatabaseDSN:     os.Getenv("DB_DSN"),
		MailHost:        getEnv("MAIL_HOST", "localhost"),
		MailPort:        getEnvInt("MAIL_PORT", 587),
		MailUsername:    os.Getenv("MAIL_USERNAME"),
		MailPassword:    os.Getenv("MAIL_PASSWORD"),
		MailSender:      getEnv("MAIL_SENDER", "library-api@libreshelf.org"),
		OverdueLoanDays: getEnvInt("OVERDUE_LOAN_DAYS", 4),
		SweepCron:       getEnv("SWEEP_CRON", "0 0 * * *"),
		SeedDB:          os.Getenv("SEED_DB") == "true",
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(origin))
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using %d\n", value, key, fallback)
		return fallback
	}
	return parsed
}
