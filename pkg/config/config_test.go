package config

import (
	"path/filepath"
	"testing"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "MESSAGE_STORE", "MONGO_DATABASE", "NATS_URL", "LOG_PRETTY"} {
		t.Setenv(key, "")
	}

	cfg := fromViper(newViper())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, MessageStoreMongo, cfg.MessageStore)
	assert.Equal(t, "tuiter", cfg.MongoDatabase)
	assert.Empty(t, cfg.NatsURL)
	assert.False(t, cfg.LogPretty)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("MESSAGE_STORE", MessageStorePostgres)
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("LOG_PRETTY", "true")

	cfg := fromViper(newViper())

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, MessageStorePostgres, cfg.MessageStore)
	assert.Equal(t, "nats://localhost:4222", cfg.NatsURL)
	assert.True(t, cfg.LogPretty)
}

func TestOpenSQL(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		_, err := OpenSQL(&Config{DBDriver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("postgres without connection string", func(t *testing.T) {
		_, err := OpenSQL(&Config{DBDriver: "postgres"})
		assert.ErrorContains(t, err, "POSTGRES_CONN_STR")
	})

	t.Run("sqlite migrates", func(t *testing.T) {
		db, err := OpenSQL(&Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")})
		require.NoError(t, err)
		require.NoError(t, AutoMigrate(db))
		assert.True(t, db.Migrator().HasTable(&models.Follow{}))
		assert.True(t, db.Migrator().HasTable(&models.Message{}))

		(&DB{SQL: db}).CloseDB()
	})
}

func TestInitDBRequiresMongoURI(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "sqlite"})
	assert.ErrorContains(t, err, "MONGO_URI")
}
