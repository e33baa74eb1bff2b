package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_HOST", "DB_PORT", "DB_NAME",
		"MAIL_HOST", "MAIL_PORT",
		"ADMIN_EMAIL", "ADMIN_PASSWORD",
		"TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("DB = %s:%d, want localhost:5432", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 587 {
		t.Errorf("Mail = %s:%d, want smtp.gmail.com:587", cfg.Mail.Host, cfg.Mail.Port)
	}
	if cfg.Admin.Password != "1234" {
		t.Errorf("Admin.Password = %q, want 1234", cfg.Admin.Password)
	}
	if cfg.Telegram.Token != "" || cfg.Telegram.ChatID != 0 {
		t.Errorf("Telegram should be disabled by default, got %+v", cfg.Telegram)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.DB.Port != 5433 {
		t.Errorf("DB.Port = %d, want 5433", cfg.DB.Port)
	}
	if cfg.Admin.Password != "s3cret" {
		t.Errorf("Admin.Password = %q, want s3cret", cfg.Admin.Password)
	}
	if cfg.Telegram.ChatID != 123456 {
		t.Errorf("Telegram.ChatID = %d, want 123456", cfg.Telegram.ChatID)
	}
}
