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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Saipos     Saipos     `mapstructure:",squash"`
	SaiposSync SaiposSync `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

type Saipos struct {
	URL              string `mapstructure:"saipos_url"`
	DateFilterColumn string `mapstructure:"saipos_date_filter_column"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SaiposSync concentra os parâmetros de tuning da sincronização de vendas.
// Os delays e o limite de páginas existem para não estourar o rate limit
// da API do Saipos; não remover sem validar com o fornecedor.
type SaiposSync struct {
	CronSchedule        string `mapstructure:"saipos_sync_cron"`
	LookbackDays        int    `mapstructure:"saipos_sync_lookback_days"`
	PageLimit           int    `mapstructure:"saipos_sync_page_limit"`
	MaxPages            int    `mapstructure:"saipos_sync_max_pages"`
	MaxRetries          int    `mapstructure:"saipos_sync_max_retries"`
	BackoffMs           int    `mapstructure:"saipos_sync_backoff_ms"`
	PageDelayMs         int    `mapstructure:"saipos_sync_page_delay_ms"`
	TimezoneOffsetHours int    `mapstructure:"saipos_sync_timezone_offset_hours"`
	MaxConcurrentJobs   int    `mapstructure:"saipos_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"saipos_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SAIPOS_URL", "https://api.saipos.com/v1")
	viper.SetDefault("SAIPOS_DATE_FILTER_COLUMN", "shift_date")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de vendas do Saipos
	viper.SetDefault("SAIPOS_SYNC_CRON", "0 4 * * *")         // Todos os dias às 4h da manhã
	viper.SetDefault("SAIPOS_SYNC_LOOKBACK_DAYS", 15)         // 15 dias para buscar dados
	viper.SetDefault("SAIPOS_SYNC_PAGE_LIMIT", 200)           // Registros por página
	viper.SetDefault("SAIPOS_SYNC_MAX_PAGES", 100)            // Trava de segurança da paginação
	viper.SetDefault("SAIPOS_SYNC_MAX_RETRIES", 3)            // Tentativas por página em caso de 429
	viper.SetDefault("SAIPOS_SYNC_BACKOFF_MS", 1000)          // Base do backoff linear (tentativa * base)
	viper.SetDefault("SAIPOS_SYNC_PAGE_DELAY_MS", 500)        // Pausa entre páginas bem-sucedidas
	viper.SetDefault("SAIPOS_SYNC_TIMEZONE_OFFSET_HOURS", -3) // Offset fixo, sem DST
	viper.SetDefault("SAIPOS_SYNC_MAX_CONCURRENT_JOBS", 1)    // Sequencial por padrão
	viper.SetDefault("SAIPOS_SYNC_ENABLED", false)            // Habilitar sincronização agendada

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// Tentar várias localizações possíveis para o arquivo .env
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
