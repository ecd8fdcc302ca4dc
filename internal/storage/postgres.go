package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PostgresClient struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresClient(connectionURL string, logger *zap.Logger) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{
		pool:   pool,
		logger: logger,
	}, nil
}

func (c *PostgresClient) Close() {
	c.pool.Close()
}

func (c *PostgresClient) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (c *PostgresClient) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS projection_snapshots (
			id UUID PRIMARY KEY,
			subject_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			baseline_years DOUBLE PRECISION NOT NULL,
			health_adjustment_years DOUBLE PRECISION NOT NULL,
			adjusted_years DOUBLE PRECISION NOT NULL,
			years_remaining DOUBLE PRECISION NOT NULL,
			percentage_remaining DOUBLE PRECISION NOT NULL,
			battery_level_percent DOUBLE PRECISION NOT NULL,
			default_profile_used BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_projection_snapshots_subject
			ON projection_snapshots (subject_id, created_at DESC);
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := c.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveProjection persists one snapshot, filling in ID and CreatedAt.
func (c *PostgresClient) SaveProjection(ctx context.Context, snap *ProjectionSnapshot) error {
	query := `
		INSERT INTO projection_snapshots (
			id, subject_id, variant, baseline_years, health_adjustment_years,
			adjusted_years, years_remaining, percentage_remaining,
			battery_level_percent, default_profile_used
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap.ID = uuid.New()
	err := c.pool.QueryRow(
		ctx,
		query,
		snap.ID,
		snap.SubjectID,
		snap.Variant,
		snap.BaselineYears,
		snap.HealthAdjustmentYears,
		snap.AdjustedYears,
		snap.YearsRemaining,
		snap.PercentageRemaining,
		snap.BatteryLevelPercent,
		snap.DefaultProfileUsed,
	).Scan(&snap.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save projection snapshot: %w", err)
	}
	return nil
}

// RecentProjections returns the newest snapshots for a subject, newest first.
func (c *PostgresClient) RecentProjections(ctx context.Context, subjectID string, limit int) ([]*ProjectionSnapshot, error) {
	query := `
		SELECT id, subject_id, variant, baseline_years, health_adjustment_years,
		       adjusted_years, years_remaining, percentage_remaining,
		       battery_level_percent, default_profile_used, created_at
		FROM projection_snapshots
		WHERE subject_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := c.pool.Query(ctx, query, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query projection snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*ProjectionSnapshot
	for rows.Next() {
		var s ProjectionSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.SubjectID,
			&s.Variant,
			&s.BaselineYears,
			&s.HealthAdjustmentYears,
			&s.AdjustedYears,
			&s.YearsRemaining,
			&s.PercentageRemaining,
			&s.BatteryLevelPercent,
			&s.DefaultProfileUsed,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return snapshots, nil
}
