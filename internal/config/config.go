package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Backoffice       Backoffice       `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Backoffice décrit l'API REST du backoffice Autohall consommée par le service
type Backoffice struct {
	BaseURL        string        `mapstructure:"backoffice_base_url"`
	Timeout        time.Duration `mapstructure:"backoffice_timeout"`
	PageSize       int           `mapstructure:"backoffice_page_size"`
	MarquePageSize int           `mapstructure:"backoffice_marque_page_size"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("BACKOFFICE_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("BACKOFFICE_TIMEOUT", "15s")
	viper.SetDefault("BACKOFFICE_PAGE_SIZE", 100)
	viper.SetDefault("BACKOFFICE_MARQUE_PAGE_SIZE", 200)

	viper.SetDefault("AUTH_SECRET", "votre_secret_jwt")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	// Rafraîchissement du tableau de bord global toutes les 15 minutes
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/15 * * * *")
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Charge d'abord le fichier .env via godotenv (environnement local)
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// La lecture du .env par viper est optionnelle, godotenv a déjà chargé
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Variables chargées par godotenv (viper n'a pas lu .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile cherche un .env dans le répertoire courant puis ses parents
func loadEnvFile() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err == nil {
				logrus.WithField("path", candidate).Debug("Fichier .env chargé")
			}
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
