package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/models"
)

func newTestMemoryRepo(t *testing.T) (*memoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &memoryRepository{
		DB:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateMemory_Success(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "content", "created_at"}).
		AddRow(3, 7, "First day of school", now)

	mock.ExpectQuery("INSERT INTO memories").
		WithArgs(int64(7), "First day of school", sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateMemory(ctx, models.Memory{UserID: 7, Content: "First day of school"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateMemory_DBError(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO memories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateMemory(ctx, models.Memory{UserID: 7, Content: "x"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestListMemories_Success(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "content", "created_at"}).
		AddRow(2, 7, "newer", now).
		AddRow(1, 7, "older", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM memories").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	items, err := repo.ListMemories(ctx, 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 memories, got %d", len(items))
	}
	if items[0].Content != "newer" || items[1].Content != "older" {
		t.Errorf("rows returned out of order: %q, %q", items[0].Content, items[1].Content)
	}
}

func TestListMemories_Empty(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"})

	mock.ExpectQuery("SELECT (.+) FROM memories").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	items, err := repo.ListMemories(ctx, 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d rows", len(items))
	}
}

func TestListMemories_QueryError(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM memories").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListMemories(ctx, 7, 10)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
