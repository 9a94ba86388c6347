package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"tempobemgasto/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN builds the connection URL from the individual DB_* settings.
func DSN(config *types.Config) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.DBUser, config.DBPassword),
		Host:   net.JoinHostPort(config.DBHost, strconv.FormatUint(uint64(config.DBPort), 10)),
		Path:   "/" + config.DBName,
	}

	q := url.Values{}
	q.Set("sslmode", config.DBSSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

func Connect(ctx context.Context, config *types.Config) (*pgxpool.Pool, error) {

	poolConfig, err := pgxpool.ParseConfig(DSN(config))
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if _, ok := poolConfig.ConnConfig.RuntimeParams["search_path"]; !ok && config.DBSchema != "" {
		poolConfig.ConnConfig.RuntimeParams["search_path"] = config.DBSchema
	}

	if config.DBMaxConns > 0 {
		poolConfig.MaxConns = config.DBMaxConns
	}
	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.MaxConnLifetime = 45 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
