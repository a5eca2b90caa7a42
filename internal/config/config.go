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
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Import             Import             `mapstructure:",squash"`
	Inventory          Inventory          `mapstructure:",squash"`
	ReconciliationSync ReconciliationSync `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	DefaultUser     string `mapstructure:"auth_default_user"`
	DefaultPassword string `mapstructure:"auth_default_password"`
}

type Import struct {
	// Tamanho do mini-lote com commit intermediário nas importações.
	BatchSize int `mapstructure:"import_batch_size"`
	// Magnitude máxima aceita no layout de resumo bancário; valores acima
	// disso são tratados como erro de separador decimal e descartados.
	SettlementValueCeiling float64 `mapstructure:"settlement_value_ceiling"`
}

type Inventory struct {
	WindowDays   int `mapstructure:"inventory_window_days"`
	MinCoverDays int `mapstructure:"inventory_min_cover_days"`
}

type ReconciliationSync struct {
	CronSchedule  string  `mapstructure:"reconciliation_sync_cron"`
	Enabled       bool    `mapstructure:"reconciliation_sync_enabled"`
	DiffThreshold float64 `mapstructure:"reconciliation_sync_diff_threshold"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrify")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_DEFAULT_USER", "admin")
	viper.SetDefault("AUTH_DEFAULT_PASSWORD", "admin123") // ONLY LOCAL

	viper.SetDefault("IMPORT_BATCH_SIZE", 50)
	viper.SetDefault("SETTLEMENT_VALUE_CEILING", 1000000000)

	viper.SetDefault("INVENTORY_WINDOW_DAYS", 30)
	viper.SetDefault("INVENTORY_MIN_COVER_DAYS", 15)

	// Defaults para a verificação diária de conciliação
	viper.SetDefault("RECONCILIATION_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("RECONCILIATION_SYNC_ENABLED", false)    // Habilitar verificação de conciliação
	viper.SetDefault("RECONCILIATION_SYNC_DIFF_THRESHOLD", 1) // Divergência mínima (R$) para alertar

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
