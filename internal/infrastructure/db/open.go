package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/db/migrations"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/db/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver   string
	URL      string
	MaxConns int32
	Logger   *zap.Logger
}

// Open connects to the configured database and brings its schema up to date.
// Postgres runs the embedded SQL migrations over a pgx pool that gorm then
// shares; sqlite uses gorm's AutoMigrate with the same constraints. The
// returned close func releases every underlying connection.
func Open(ctx context.Context, cfg Config) (*gorm.DB, func(), error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return openPostgres(ctx, cfg)
	case DriverSQLite:
		return OpenSQLite(cfg.URL, cfg.Logger)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg Config) (*gorm.DB, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(cfg.Logger))
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	closeFn := func() {
		_ = sqlDB.Close()
		pool.Close()
	}
	return gdb, closeFn, nil
}

// OpenSQLite opens a sqlite database with foreign keys enforced. An empty or
// ":memory:" dsn yields a private in-memory database.
func OpenSQLite(dsn string, logger *zap.Logger) (*gorm.DB, func(), error) {
	gdb, err := gorm.Open(sqlite.Open(sqliteDSN(dsn)), gormConfig(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// one connection: in-memory databases are per connection and sqlite
	// serializes writers anyway
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.Customer{}, &models.Order{}); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("auto migrate: %w", err)
	}

	return gdb, func() { _ = sqlDB.Close() }, nil
}

func sqliteDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || dsn == ":memory:" {
		dsn = "file::memory:"
	}
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func gormConfig(logger *zap.Logger) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if logger == nil {
		cfg.Logger = gormlogger.Discard
		return cfg
	}
	cfg.Logger = gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
	return cfg
}
