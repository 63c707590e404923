package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rpupo63/agency-site-backend/config"
	"github.com/rpupo63/agency-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// DialectorFunc builds a fresh dialector for every connection attempt.
type DialectorFunc func() gorm.Dialector

// Provider lazily opens one connection to the store and hands the same
// Database to every caller for the rest of the process lifetime.
//
// Concurrent first calls are coalesced; should two connections still be
// opened, the last one stored wins and both stay valid.
type Provider struct {
	primary    DialectorFunc
	replicas   []DialectorFunc
	gormLogger logger.Interface
	logger     zerolog.Logger

	current  atomic.Pointer[Database]
	group    singleflight.Group
	connects atomic.Int64
}

func NewProvider(primary DialectorFunc, opts ...func(*Provider)) *Provider {
	p := &Provider{
		primary:    primary,
		gormLogger: logger.Default.LogMode(logger.Silent),
		logger:     log.With().Str("component", "databaseProvider").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func WithReplicas(replicas ...DialectorFunc) func(*Provider) {
	return func(p *Provider) {
		p.replicas = append(p.replicas, replicas...)
	}
}

func WithGormLogger(l logger.Interface) func(*Provider) {
	return func(p *Provider) {
		p.gormLogger = l
	}
}

// NewPostgresProvider builds a Provider for the configured primary and replicas.
func NewPostgresProvider(cfg config.Config) *Provider {
	opts := []func(*Provider){WithGormLogger(NewGormLogger(log.Logger))}
	for _, replica := range cfg.DatabaseReplicaURLs {
		opts = append(opts, WithReplicas(postgresDialector(WithDatabaseName(replica, cfg.DBName))))
	}
	return NewProvider(postgresDialector(WithDatabaseName(cfg.DatabaseURL, cfg.DBName)), opts...)
}

func postgresDialector(dsn string) DialectorFunc {
	return func() gorm.Dialector {
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	}
}

// NewGormLogger routes GORM's warnings and slow queries through zerolog.
func NewGormLogger(base zerolog.Logger) logger.Interface {
	gormWriter := base.With().Str("component", "gorm").Logger()
	return logger.New(&gormWriter, logger.Config{
		SlowThreshold:             10 * time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Get returns the memoized Database, connecting on first use. A failed
// connection is returned as is; the next call tries again.
func (p *Provider) Get(ctx context.Context) (Database, error) {
	if db := p.current.Load(); db != nil {
		return *db, nil
	}

	v, err, _ := p.group.Do("connect", func() (any, error) {
		if db := p.current.Load(); db != nil {
			return db, nil
		}
		db, err := p.connect(ctx)
		if err != nil {
			return nil, err
		}
		p.current.Store(db)
		return db, nil
	})
	if err != nil {
		return Database{}, err
	}
	return *v.(*Database), nil
}

// Connects reports how many connections the provider has opened.
func (p *Provider) Connects() int64 {
	return p.connects.Load()
}

func (p *Provider) connect(ctx context.Context) (*Database, error) {
	conn, err := gorm.Open(p.primary(), &gorm.Config{
		Logger:         p.gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if len(p.replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(p.replicas))
		for _, replica := range p.replicas {
			replicas = append(replicas, replica())
		}
		err := conn.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			closeConn(conn)
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		closeConn(conn)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(models.Collections()...); err != nil {
		closeConn(conn)
		return nil, fmt.Errorf("ensure collections: %w", err)
	}

	n := p.connects.Add(1)
	p.logger.Info().Int64("connects", n).Int("replicas", len(p.replicas)).Msg("Connected to database")

	db := New(conn)
	return &db, nil
}

// Close releases the memoized connection, if any. A later Get reconnects.
func (p *Provider) Close() error {
	db := p.current.Swap(nil)
	if db == nil {
		return nil
	}
	sqlDB, err := db.Conn().DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeConn(conn *gorm.DB) {
	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.Close()
	}
}

// WithDatabaseName points dsn at name unless it already names a database.
// Both URL ("postgres://...") and key/value ("host=... user=...") forms are accepted.
func WithDatabaseName(dsn, name string) string {
	if name == "" {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		if strings.Trim(u.Path, "/") == "" {
			u.Path = "/" + name
		}
		return u.String()
	}
	if strings.Contains(dsn, "dbname=") {
		return dsn
	}
	return strings.TrimSpace(dsn + " dbname=" + name)
}
