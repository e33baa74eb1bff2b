package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Mail     MailConfig
	Admin    AdminConfig
	Telegram TelegramConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type MailConfig struct {
	Host string
	Port int
	User string
	Pass string
}

type AdminConfig struct {
	Email    string // recipient of order/contact notification mail
	Password string // admin page login
}

type TelegramConfig struct {
	Token  string // bot token for admin order alerts, empty disables the channel
	ChatID int64  // admin chat the alerts go to
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "restaurant"),
		},
		Mail: MailConfig{
			Host: getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port: mailPort,
			User: getEnv("MAIL_USER", ""),
			Pass: getEnv("MAIL_PASS", ""),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			Password: getEnv("ADMIN_PASSWORD", "1234"),
		},
		Telegram: TelegramConfig{
			Token:  getEnv("TELEGRAM_TOKEN", ""),
			ChatID: chatID,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
