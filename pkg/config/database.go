package config

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB holds the database connections shared by every store in the process
type DB struct {
	SQL           *gorm.DB
	Mongo         *mongo.Client
	MongoDatabase string
}

// InitDB opens the relational store and MongoDB described by cfg
func InitDB(cfg *Config) (*DB, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	sqlDB, err := OpenSQL(cfg)
	if err != nil {
		return nil, err
	}

	mongoClient, err := initMongo(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{
		SQL:           sqlDB,
		Mongo:         mongoClient,
		MongoDatabase: cfg.MongoDatabase,
	}, nil
}

// OpenSQL opens the gorm connection for cfg.DBDriver. Driver errors such as
// unique violations are translated to gorm's sentinel errors.
func OpenSQL(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		if cfg.PostgresConnStr == "" {
			return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
		}
		dialector = postgres.Open(cfg.PostgresConnStr)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Gorm(logger.L()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	l := logger.L()
	l.Info().Str("driver", cfg.DBDriver).Msg("connected to relational store")
	return db, nil
}

// initMongo initializes the MongoDB connection
func initMongo(uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	l := logger.L()
	l.Info().Msg("connected to MongoDB")
	return client, nil
}

// AutoMigrate creates the association, message and user tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Dislike{},
		&models.Message{},
	)
}

// Database returns the configured MongoDB database
func (db *DB) Database() *mongo.Database {
	return db.Mongo.Database(db.MongoDatabase)
}

// CloseDB closes the database connections
func (db *DB) CloseDB() {
	l := logger.L()
	if db.SQL != nil {
		sqlDB, err := db.SQL.DB()
		if err != nil {
			l.Error().Err(err).Msg("error getting SQL DB from GORM")
		} else if err := sqlDB.Close(); err != nil {
			l.Error().Err(err).Msg("error closing relational store")
		} else {
			l.Info().Msg("relational store connection closed")
		}
	}

	if db.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Disconnect(ctx); err != nil {
			l.Error().Err(err).Msg("error closing MongoDB connection")
		} else {
			l.Info().Msg("MongoDB connection closed")
		}
	}
}
