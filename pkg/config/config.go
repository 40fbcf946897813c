package config

import (
	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Message store backends
const (
	MessageStoreMongo    = "mongo"
	MessageStorePostgres = "postgres"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	LogPretty       bool
	DBDriver        string
	PostgresConnStr string
	SQLitePath      string
	MongoURI        string
	MongoDatabase   string
	MessageStore    string
	NatsURL         string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		l := logger.L()
		l.Debug().Msg("no .env file found, assuming environment variables are set")
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SQLITE_PATH", "relations.db")
	v.SetDefault("MONGO_DATABASE", "tuiter")
	v.SetDefault("MESSAGE_STORE", MessageStoreMongo)
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:            v.GetString("PORT"),
		Env:             v.GetString("ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogPretty:       v.GetBool("LOG_PRETTY"),
		DBDriver:        v.GetString("DB_DRIVER"),
		PostgresConnStr: v.GetString("POSTGRES_CONN_STR"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDatabase:   v.GetString("MONGO_DATABASE"),
		MessageStore:    v.GetString("MESSAGE_STORE"),
		NatsURL:         v.GetString("NATS_URL"),
	}
}
