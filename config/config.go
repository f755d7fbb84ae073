package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App is the runtime configuration, read from the environment (and .env).
type App struct {
	Env  string `envconfig:"APP_ENV" default:"dev"`
	Port string `envconfig:"PORT" default:"8080"`

	// DB
	DBDriver    string `envconfig:"DB_DRIVER" default:"mysql"` // mysql | postgres | sqlite
	DatabaseURL string `envconfig:"DATABASE_URL"`
	MySQLURL    string `envconfig:"MYSQL_URL"`
	DBUser      string `envconfig:"DB_USER" default:"root"`
	DBPass      string `envconfig:"DB_PASS"`
	DBHost      string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort      string `envconfig:"DB_PORT"`
	DBName      string `envconfig:"DB_NAME" default:"admin_db"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"` // silent | error | warn | info
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	Seed        bool   `envconfig:"DB_SEED" default:"false"`

	SeedTeacherPassword string `envconfig:"SEED_TEACHER_PASSWORD" default:"teacher123"`

	// HTTP
	CorsOrigins   string `envconfig:"CORS_ORIGINS"`
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"th"`
}

// Load reads .env when present, then decodes the environment.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	return c, nil
}

func (c App) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// CorsOriginList splits CORS_ORIGINS; empty means any origin.
func (c App) CorsOriginList() []string {
	raw := strings.TrimSpace(c.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
