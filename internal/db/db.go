package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"disc-match/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para un servicio de bajo volumen.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Migrate aplica el esquema. El servicio es dueño de una sola tabla, asi que
// un CREATE IF NOT EXISTS al arranque alcanza; no hay versionado de esquema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS respondents (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			dominant_type TEXT NOT NULL,
			animal        TEXT NOT NULL,
			score_d       INT NOT NULL DEFAULT 0,
			score_i       INT NOT NULL DEFAULT 0,
			score_s       INT NOT NULL DEFAULT 0,
			score_c       INT NOT NULL DEFAULT 0
		)
	`
	_, err := pool.Exec(ctx, schema)
	return err
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}
