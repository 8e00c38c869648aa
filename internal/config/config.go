package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Datasets        Datasets        `mapstructure:",squash"`
	Snapshot        Snapshot        `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Datasets aponta para os arquivos planos de entrada: uma planilha de
// marketing por plataforma e uma de desempenho do negócio.
type Datasets struct {
	FacebookPath string `mapstructure:"dataset_facebook_path"`
	GooglePath   string `mapstructure:"dataset_google_path"`
	TikTokPath   string `mapstructure:"dataset_tiktok_path"`
	BusinessPath string `mapstructure:"dataset_business_path"`
}

// Snapshot configura o diretório onde os CSVs processados e o
// insights.json são gravados.
type Snapshot struct {
	OutputDir string `mapstructure:"snapshot_output_dir"`
}

// SnapshotRefresh configura o job agendado que reexecuta o pipeline e
// regrava os snapshots quando as entradas mudam.
type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_FACEBOOK_PATH", "data/Facebook.csv")
	viper.SetDefault("DATASET_GOOGLE_PATH", "data/Google.csv")
	viper.SetDefault("DATASET_TIKTOK_PATH", "data/TikTok.csv")
	viper.SetDefault("DATASET_BUSINESS_PATH", "data/business.csv")

	viper.SetDefault("SNAPSHOT_OUTPUT_DIR", "data/processed")

	// Defaults para a atualização agendada dos snapshots
	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

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

	return config, nil
}

// DatasetPaths devolve os caminhos de entrada na ordem em que as
// plataformas aparecem nos snapshots, com a fonte de negócio por último.
func (c *Config) DatasetPaths() []string {
	return []string{
		c.Datasets.FacebookPath,
		c.Datasets.GooglePath,
		c.Datasets.TikTokPath,
		c.Datasets.BusinessPath,
	}
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
