//go:build integration

package seed

import (
	"net/url"
	"os"
	"strings"
	"testing"

	"glowup/internal/config"
	"glowup/internal/database"
	"glowup/internal/models"
)

func parseDatabaseURLToConfig(dsn string) (*config.Config, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	password := ""
	if u.User != nil {
		password, _ = u.User.Password()
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	dbname := strings.TrimPrefix(u.Path, "/")
	cfg := &config.Config{
		DBHost:       host,
		DBPort:       port,
		DBUser:       u.User.Username(),
		DBPassword:   password,
		DBName:       dbname,
		DBSSLMode:    "disable",
		Env:          "test",
		DBSchemaMode: "auto",
	}
	return cfg, nil
}

func TestIntegration_SeedFullRun(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration seed test")
	}
	cfg, err := parseDatabaseURLToConfig(dsn)
	if err != nil {
		t.Fatalf("failed parse dsn: %v", err)
	}
	// Connect applies the schema per DBSchemaMode before returning.
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}

	seeder := NewSeeder(db, Options{
		NumUsers:    10,
		NumPosts:    30,
		ShouldClean: true,
		SkipBcrypt:  true,
		BatchSize:   50,
		MaxDays:     30,
	})
	if err := seeder.Run(); err != nil {
		t.Fatalf("seeder run failed: %v", err)
	}

	var postCount int64
	if err := db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if postCount == 0 {
		t.Fatalf("expected seeded posts, got 0")
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if productCount != int64(len(Catalog)) {
		t.Fatalf("expected %d products, got %d", len(Catalog), productCount)
	}
}
