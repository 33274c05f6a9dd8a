package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// memoryRepository executes all memory CRUD operations against the
// "memories" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, memory id, limit).
type memoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewMemoryRepository constructs a [MemoryRepository] backed by
// the provided database connection and logger.
func NewMemoryRepository(db *DB, logger *logger.Logger) MemoryRepository {
	return &memoryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMemory inserts a new memory row for the owning user and returns it
// with the server-assigned id. The caller is responsible for having resolved
// the owning user; a dangling UserID fails on the foreign key constraint.
func (m *memoryRepository) CreateMemory(ctx context.Context, memory models.Memory) (models.Memory, error) {
	log := logger.FromContext(ctx)

	if memory.CreatedAt.IsZero() {
		memory.CreatedAt = time.Now().UTC()
	}

	row := m.DB.QueryRowContext(ctx, createMemory,
		memory.UserID, memory.Content, memory.CreatedAt)

	var created models.Memory
	if err := row.Scan(&created.ID, &created.UserID, &created.Content, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*memoryRepository.CreateMemory").
			Int64("user_id", memory.UserID).
			Msg("failed to insert memory")
		return models.Memory{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListMemories returns up to limit memories owned by userID, newest first.
// Records created in the same instant are ordered by descending id so the
// result is stable. An empty result is a valid outcome, not an error.
func (m *memoryRepository) ListMemories(ctx context.Context, userID int64, limit int) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "user_id", "content", "created_at").
		From("memories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*memoryRepository.ListMemories").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*memoryRepository.ListMemories").
			Int64("user_id", userID).
			Int("limit", limit).
			Msg("failed to execute query for listing memories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Memory, 0, limit)

	for rows.Next() {
		var item models.Memory

		if scanErr := rows.Scan(&item.ID, &item.UserID, &item.Content, &item.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*memoryRepository.ListMemories").
				Int64("user_id", userID).
				Msg("failed to scan memory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*memoryRepository.ListMemories").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
