package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database from environment settings. MySQL is the default;
// DB_DRIVER=sqlite switches to a file (or in-memory) database for local runs.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "sqlite" {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = "homeorder.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		user := envOrDefault("DB_USER", "root")
		pass := os.Getenv("DB_PASSWORD")
		host := envOrDefault("DB_HOST", "127.0.0.1")
		port := envOrDefault("DB_PORT", "3306")
		name := envOrDefault("DB_NAME", "homeorder")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
