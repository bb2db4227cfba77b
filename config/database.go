package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"certgen/api-gateway/internal/store"
)

// OpenStore connects the backend selected by cfg.StoreDriver and, when
// REDIS_ADDR is set, wraps it with the template cache.
func OpenStore(cfg *Config, log *logrus.Logger) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.StoreDriver {
	case DriverPostgrest:
		st, err = openPostgrest(cfg)
	case DriverPostgres:
		st, err = openGorm(postgres.Open(cfg.DatabaseURL), cfg.DBName)
	case DriverSQLite:
		st, err = openGorm(sqlite.Open(cfg.SQLitePath()), "")
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.StoreDriver).Info("Document store initialized successfully.")

	if cfg.RedisAddr == "" {
		return st, nil
	}
	rdb, err := ConnectRedis(cfg.RedisAddr)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	log.WithField("addr", cfg.RedisAddr).Info("Template cache enabled.")
	return store.NewCachedStore(st, rdb, cfg.CacheTTL, log), nil
}

func openPostgrest(cfg *Config) (store.Store, error) {
	if cfg.SupabaseURL != "" {
		client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supa.ClientOptions{Schema: cfg.Schema()})
		if err != nil {
			return nil, fmt.Errorf("initialize supabase client: %w", err)
		}
		return store.NewPostgrestStore(client), nil
	}

	headers := map[string]string{}
	if cfg.SupabaseServiceKey != "" {
		headers["apikey"] = cfg.SupabaseServiceKey
		headers["Authorization"] = "Bearer " + cfg.SupabaseServiceKey
	}
	client := postgrest.NewClient(cfg.PostgrestURL, cfg.Schema(), headers)
	if client.ClientError != nil {
		return nil, fmt.Errorf("initialize postgrest client: %w", client.ClientError)
	}
	return store.NewPostgrestStore(client), nil
}

// openGorm opens a gorm connection. A non-empty schemaName prefixes the
// table names so Postgres keeps them in that schema.
func openGorm(dialector gorm.Dialector, schemaName string) (store.Store, error) {
	naming := schema.NamingStrategy{}
	if schemaName != "" {
		naming.TablePrefix = schemaName + "."
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: naming,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return store.NewGormStore(db)
}
