package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*ReviewRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &ReviewRepository{db: db}, mock, func() { _ = db.Close() }
}

func scoredReview(id, bank string, rating int, compound float64) domain.ScoredReview {
	return domain.ScoredReview{
		Review: domain.Review{
			ID:     id,
			Text:   "text for " + id,
			Rating: rating,
			Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Bank:   bank,
			Source: "google_play",
		},
		Scores:   domain.SentimentScores{VaderCompound: compound},
		Category: domain.CategoryPositive,
	}
}

func TestEnsureSchemaRunsDDLUnderAdvisoryLock(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(int64(2026053001)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS banks").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertBanksReturnsIDs(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("INSERT INTO banks").
		WithArgs("Commercial Bank of Ethiopia", "com.combanketh.mobilebanking").
		WillReturnRows(sqlmock.NewRows([]string{"bank_id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO banks").
		WithArgs("Bank of Abyssinia", "com.boa.boaMobileBanking").
		WillReturnRows(sqlmock.NewRows([]string{"bank_id"}).AddRow(int64(2)))

	ids, err := repo.UpsertBanks(context.Background(), []domain.AppTarget{
		{AppID: "com.combanketh.mobilebanking", BankName: "Commercial Bank of Ethiopia"},
		{AppID: "com.boa.boaMobileBanking", BankName: "Bank of Abyssinia"},
	})
	if err != nil {
		t.Fatalf("UpsertBanks() error = %v", err)
	}
	if ids["Commercial Bank of Ethiopia"] != 1 || ids["Bank of Abyssinia"] != 2 {
		t.Fatalf("ids = %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInsertReviewsCommitsWholeBatch(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO reviews")
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("r1", int64(1), "text for r1", 5, sqlmock.AnyArg(), "positive", 0.8, "google_play").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("r2", int64(1), "text for r2", 4, sqlmock.AnyArg(), "positive", 0.6, "google_play").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	inserted, err := repo.InsertReviews(context.Background(),
		[]domain.ScoredReview{
			scoredReview("r1", "cbe", 5, 0.8),
			scoredReview("r2", "cbe", 4, 0.6),
		},
		map[string]int64{"cbe": 1},
	)
	if err != nil {
		t.Fatalf("InsertReviews() error = %v", err)
	}
	// The second row conflicted; only one insert counts.
	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInsertReviewsRollsBackOnError(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO reviews")
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.InsertReviews(context.Background(),
		[]domain.ScoredReview{scoredReview("r1", "cbe", 5, 0.8)},
		map[string]int64{"cbe": 1},
	)
	if err == nil {
		t.Fatalf("expected insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInsertReviewsUnknownBank(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO reviews")
	mock.ExpectRollback()

	_, err := repo.InsertReviews(context.Background(),
		[]domain.ScoredReview{scoredReview("r1", "unknown", 5, 0.8)},
		map[string]int64{"cbe": 1},
	)
	if !domain.IsKind(err, domain.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCountByBank(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT b.bank_name, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"bank_name", "count"}).
			AddRow("Bank of Abyssinia", 120).
			AddRow("Commercial Bank of Ethiopia", 400))

	counts, err := repo.CountByBank(context.Background())
	if err != nil {
		t.Fatalf("CountByBank() error = %v", err)
	}
	if counts["Commercial Bank of Ethiopia"] != 400 || counts["Bank of Abyssinia"] != 120 {
		t.Fatalf("counts = %v", counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
