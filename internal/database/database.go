package database

import (
	"context"
	"fmt"
	"time"

	"github.com/loongsen/qcrelay/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps gorm.DB with the pool settings applied
type DB struct {
	*gorm.DB
}

// Dialector returns the GORM dialector for the configured driver
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLServer:
		return sqlserver.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Connect builds the connection pool for the configured relational database.
// No connection is made here; the first query dials.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, cfg, log)
	if err != nil {
		return nil, err
	}

	log.Info("Database pool configured",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
		zap.Int("pool_max", cfg.PoolMax),
		zap.Duration("idle_timeout", cfg.IdleTimeout),
	)
	return db, nil
}

// Open wraps an arbitrary dialector with the shared pool and logging settings
func Open(dialector gorm.Dialector, cfg config.DatabaseConfig, log *zap.Logger) (*DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.PoolMax)
	sqlDB.SetMaxIdleConns(cfg.PoolMax)
	if cfg.IdleTimeout > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.IdleTimeout)
	}

	return &DB{DB: db}, nil
}

// Check runs a trivial round-trip query and returns its scalar result
func (db *DB) Check(ctx context.Context) (int, error) {
	var result int
	if err := db.WithContext(ctx).Raw("SELECT 1 AS test").Scan(&result).Error; err != nil {
		return 0, err
	}
	return result, nil
}

// Close releases all pooled connections
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
