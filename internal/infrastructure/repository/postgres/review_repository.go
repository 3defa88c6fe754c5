package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *ReviewRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent loaders.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026053001)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS banks (
	bank_id SERIAL PRIMARY KEY,
	bank_name TEXT NOT NULL UNIQUE,
	app_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reviews (
	review_id TEXT PRIMARY KEY,
	bank_id INTEGER NOT NULL REFERENCES banks(bank_id) ON DELETE CASCADE ON UPDATE CASCADE,
	review_text TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	review_date DATE NOT NULL,
	sentiment_label TEXT NOT NULL CHECK (sentiment_label IN ('positive','negative','neutral')),
	sentiment_score DOUBLE PRECISION NOT NULL CHECK (sentiment_score BETWEEN -1 AND 1),
	source TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_bank_id ON reviews(bank_id);
CREATE INDEX IF NOT EXISTS idx_reviews_review_date ON reviews(review_date);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// UpsertBanks inserts the manifest banks and returns bank_name -> bank_id.
func (r *ReviewRepository) UpsertBanks(ctx context.Context, targets []domain.AppTarget) (map[string]int64, error) {
	ids := make(map[string]int64, len(targets))
	for _, t := range targets {
		var id int64
		err := r.db.QueryRowContext(ctx, `
INSERT INTO banks (bank_name, app_name)
VALUES ($1, $2)
ON CONFLICT (bank_name) DO UPDATE SET app_name = EXCLUDED.app_name
RETURNING bank_id
`, t.BankName, t.AppID).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("upsert bank %q: %w", t.BankName, err)
		}
		ids[t.BankName] = id
	}
	return ids, nil
}

// InsertReviews writes the whole scored batch in one transaction: either
// every row commits or none does, so a failed load never leaves a partially
// visible batch.
func (r *ReviewRepository) InsertReviews(ctx context.Context, reviews []domain.ScoredReview, bankIDs map[string]int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO reviews (review_id, bank_id, review_text, rating, review_date, sentiment_label, sentiment_score, source)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (review_id) DO NOTHING
`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range reviews {
		bankID, ok := bankIDs[rec.Bank]
		if !ok {
			return 0, domain.WrapError(domain.ErrBankNotFound, "insert review", fmt.Errorf("bank %q", rec.Bank))
		}
		res, err := stmt.ExecContext(ctx,
			rec.ID, bankID, rec.Text, rec.Rating, rec.Date,
			string(rec.Category), rec.Scores.VaderCompound, rec.Source,
		)
		if err != nil {
			return 0, fmt.Errorf("insert review %q: %w", rec.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert tx: %w", err)
	}
	return inserted, nil
}

func (r *ReviewRepository) CountByBank(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT b.bank_name, COUNT(r.review_id)
FROM banks b
LEFT JOIN reviews r ON r.bank_id = b.bank_id
GROUP BY b.bank_name
ORDER BY b.bank_name
`)
	if err != nil {
		return nil, fmt.Errorf("count reviews by bank: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var bank string
		var count int
		if err := rows.Scan(&bank, &count); err != nil {
			return nil, fmt.Errorf("scan bank count: %w", err)
		}
		out[bank] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank counts: %w", err)
	}
	return out, nil
}
