package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Model             Model             `mapstructure:",squash"`
	Cache             Cache             `mapstructure:",squash"`
	ModelTrainingSync ModelTrainingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                 string `mapstructure:"-"`
	Driver              string `mapstructure:"database_driver"`
	Password            string `mapstructure:"database_password"`
	URL                 string `mapstructure:"database_url"`
	User                string `mapstructure:"database_user"`
	MaxOpenConns        int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns        int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeSecs int    `mapstructure:"database_conn_max_lifetime_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// Credenciais do operador do dashboard. O hash é bcrypt.
	DashboardUser         string `mapstructure:"dashboard_user"`
	DashboardPasswordHash string `mapstructure:"dashboard_password_hash"`
}

type Model struct {
	// Caminho do artefato do modelo de receita (JSON com slope/intercept)
	Path string `mapstructure:"model_path"`
}

type Cache struct {
	Enabled    bool `mapstructure:"cache_enabled"`
	TTLSeconds int  `mapstructure:"cache_ttl_seconds"`
}

type ModelTrainingSync struct {
	CronSchedule string `mapstructure:"model_training_sync_cron"`
	Enabled      bool   `mapstructure:"model_training_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_SECONDS", 300) // recicla conexões a cada 5 minutos

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("DASHBOARD_USER", "admin")
	// bcrypt de "admin" — apenas para desenvolvimento local
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMye1J9JZKxWQeIbNvzKd0yCyZbmLHCOKVu")

	viper.SetDefault("MODEL_PATH", "model/revenue_model.json")

	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_TTL_SECONDS", 300) // mesmo TTL do dashboard original

	viper.SetDefault("MODEL_TRAINING_SYNC_CRON", "0 2 * * *") // todos os dias às 2h da manhã
	viper.SetDefault("MODEL_TRAINING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
