package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Utmify     Utmify     `mapstructure:",squash"`
	Vturb      Vturb      `mapstructure:",squash"`
	UtmifySync UtmifySync `mapstructure:",squash"`
	VturbSync  VturbSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Utmify struct {
	BaseURL        string   `mapstructure:"utmify_base_url"`
	Origin         string   `mapstructure:"utmify_origin"`
	Token          string   `mapstructure:"utmify_token"`
	DashboardIDRaw string   `mapstructure:"utmify_dashboard_ids"`
	DashboardIDs   []string `mapstructure:"-"`
	TimeoutSeconds int      `mapstructure:"utmify_timeout_seconds"`
	MaxRetries     int      `mapstructure:"utmify_max_retries"`
	BackoffSeconds float64  `mapstructure:"utmify_backoff_seconds"`
}

type Vturb struct {
	BaseURL        string   `mapstructure:"vturb_base_url"`
	Token          string   `mapstructure:"vturb_token"`
	PlayerIDRaw    string   `mapstructure:"vturb_player_ids"`
	PlayerIDs      []string `mapstructure:"-"`
	Timezone       string   `mapstructure:"vturb_timezone"`
	TimeoutSeconds int      `mapstructure:"vturb_timeout_seconds"`
	MaxRetries     int      `mapstructure:"vturb_max_retries"`
	BackoffSeconds float64  `mapstructure:"vturb_backoff_seconds"`
}

type UtmifySync struct {
	TodayCronSchedule   string `mapstructure:"utmify_sync_today_cron"`
	HistoryCronSchedule string `mapstructure:"utmify_sync_history_cron"`
	MaxConcurrentJobs   int    `mapstructure:"utmify_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"utmify_sync_enabled"`
}

type VturbSync struct {
	TodayCronSchedule   string `mapstructure:"vturb_sync_today_cron"`
	HistoryCronSchedule string `mapstructure:"vturb_sync_history_cron"`
	MaxConcurrentJobs   int    `mapstructure:"vturb_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"vturb_sync_enabled"`
}

func (u Utmify) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

func (u Utmify) Backoff() time.Duration {
	return time.Duration(u.BackoffSeconds * float64(time.Second))
}

func (v Vturb) Timeout() time.Duration {
	return time.Duration(v.TimeoutSeconds) * time.Second
}

func (v Vturb) Backoff() time.Duration {
	return time.Duration(v.BackoffSeconds * float64(time.Second))
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("UTMIFY_BASE_URL", "https://server.utmify.com.br")
	viper.SetDefault("UTMIFY_ORIGIN", "https://app.utmify.com.br")
	viper.SetDefault("UTMIFY_TOKEN", "")
	viper.SetDefault("UTMIFY_DASHBOARD_IDS", "")
	viper.SetDefault("UTMIFY_TIMEOUT_SECONDS", 180)
	viper.SetDefault("UTMIFY_MAX_RETRIES", 3)
	viper.SetDefault("UTMIFY_BACKOFF_SECONDS", 1.0)

	viper.SetDefault("VTURB_BASE_URL", "https://api.vturb.com")
	viper.SetDefault("VTURB_TOKEN", "")
	viper.SetDefault("VTURB_PLAYER_IDS", "")
	viper.SetDefault("VTURB_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("VTURB_TIMEOUT_SECONDS", 30)
	viper.SetDefault("VTURB_MAX_RETRIES", 3)
	viper.SetDefault("VTURB_BACKOFF_SECONDS", 1.0)

	// Snapshot intradiário e histórico na madrugada (horário local)
	viper.SetDefault("UTMIFY_SYNC_TODAY_CRON", "0 10,14,18,22 * * *")
	viper.SetDefault("UTMIFY_SYNC_HISTORY_CRON", "0 3 * * *")
	viper.SetDefault("UTMIFY_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("UTMIFY_SYNC_ENABLED", false)

	viper.SetDefault("VTURB_SYNC_TODAY_CRON", "10 10,14,18,22 * * *")
	viper.SetDefault("VTURB_SYNC_HISTORY_CRON", "15 3 * * *")
	viper.SetDefault("VTURB_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("VTURB_SYNC_ENABLED", false)

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

	config.Utmify.DashboardIDs = splitIDList(config.Utmify.DashboardIDRaw)
	config.Vturb.PlayerIDs = splitIDList(config.Vturb.PlayerIDRaw)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// splitIDList quebra uma lista separada por vírgula preservando a ordem configurada.
// A ordem importa: o dedup do pipeline desempata pela ordem da lista.
func splitIDList(raw string) []string {
	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
