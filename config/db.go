package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"admin-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	// booking days are built at UTC midnight; any other loc shifts DATE columns
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func (c App) resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(c.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(c.DatabaseURL)
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	port := c.DBPort
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPass, c.DBHost, port, c.DBName,
	), nil
}

func (c App) resolvePostgresDSN() string {
	if raw := strings.TrimSpace(c.DatabaseURL); raw != "" {
		return raw
	}
	port := c.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, port,
	)
}

// Dialector picks the gorm driver for DB_DRIVER.
func (c App) Dialector() (gorm.Dialector, error) {
	switch c.DBDriver {
	case "", "mysql":
		dsn, err := c.resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(c.resolvePostgresDSN()), nil
	case "sqlite":
		dsn := strings.TrimSpace(c.DatabaseURL)
		if dsn == "" {
			dsn = c.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the configured database, migrates and optionally seeds it.
func ConnectDatabase(c App) (*gorm.DB, error) {
	dialector, err := c.Dialector()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(c.DBLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  !c.IsProduction(),
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		log.Printf("info: cannot get raw sql.DB: %v", err)
	}

	if c.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}
	if c.Seed {
		if err := SeedDatabase(db, c.SeedTeacherPassword); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

// Migrate creates the tables in parent -> child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.User{},
		&models.Student{},
		&models.Course{},
		&models.Register{},
	)
}
