package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBDriver      string
	DBDsn         string
	Port          string
	RetentionDays int
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBDsn:         buildDSN(),
		Port:          getEnv("PORT", "7000"),
		RetentionDays: 7,
	}
}

func buildDSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		getEnv("DB_PASS", ""),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "lunchmates"),
	)
}

// InitDB opens the database once at startup. The returned handle is passed
// explicitly into every controller and service; nothing holds a package-level
// connection.
func (c *Config) InitDB() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch c.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(getEnv("DB_FILE", "lunchmates.db")), &gorm.Config{})
	default:
		db, err = gorm.Open(mysql.Open(c.DBDsn), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
