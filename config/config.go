package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Firebase FirebaseConfig
	Google   GoogleConfig
	Admin    AdminConfig
	CORS     CORSConfig
	Log      LogConfig
}

type AppConfig struct {
	Name               string
	Port               string
	Env                string
	RateLimitPerMinute int
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type FirebaseConfig struct {
	CredentialsPath string
}

type GoogleConfig struct {
	MapsAPIKey string
}

type AdminConfig struct {
	// Shared secret for the machine-to-machine notification route.
	NotificationSecret string
}

type CORSConfig struct {
	Origins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running purely from environment variables is fine (e.g. containers).
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 30 * time.Minute
	}

	// Refresh tokens are long-lived; mobile clients stay signed in.
	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 365 * 24 * time.Hour
	}

	rateLimit := viper.GetInt("RATE_LIMIT_PER_MINUTE")
	if rateLimit <= 0 {
		rateLimit = 60
	}

	origins := viper.GetString("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Name:               viper.GetString("APP_NAME"),
			Port:               viper.GetString("APP_PORT"),
			Env:                viper.GetString("APP_ENV"),
			RateLimitPerMinute: rateLimit,
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Firebase: FirebaseConfig{
			CredentialsPath: viper.GetString("FIREBASE_CREDENTIALS_PATH"),
		},
		Google: GoogleConfig{
			MapsAPIKey: viper.GetString("GOOGLE_MAPS_API_KEY"),
		},
		Admin: AdminConfig{
			NotificationSecret: viper.GetString("ADMIN_NOTIFICATION_SECRET"),
		},
		CORS: CORSConfig{
			Origins: splitAndTrim(origins),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
