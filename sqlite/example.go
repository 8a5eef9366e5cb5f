package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/articlemd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ articlemd.ExampleService = (*ExampleService)(nil)

// ExampleService implements articlemd.ExampleService using SQLite.
type ExampleService struct {
	db *DB
}

// NewExampleService creates a new ExampleService.
func NewExampleService(db *DB) *ExampleService {
	return &ExampleService{db: db}
}

// hashContent computes the xxHash of whitespace-normalized text and returns
// it as hex, so reflowed copies of the same text collide.
func hashContent(text string) string {
	h := xxhash.Sum64String(strings.Join(strings.Fields(text), " "))
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateExample stores a new example and sets its ID, hash and creation time.
// Returns ECONFLICT if the same text is already stored under the same label.
func (s *ExampleService) CreateExample(ctx context.Context, ex *articlemd.LabeledExample) error {
	if err := ex.Validate(); err != nil {
		return err
	}

	hash := hashContent(ex.Text)

	var existing string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM examples WHERE label = ? AND content_hash = ?
	`, string(ex.Label), hash).Scan(&existing)
	if err == nil {
		return articlemd.Errorf(articlemd.ECONFLICT, "example already exists as %s", existing)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	ex.ID = uuid.New().String()
	ex.ContentHash = hash
	ex.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO examples (id, text, label, source, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ex.ID, ex.Text, string(ex.Label), ex.Source, ex.ContentHash, formatTimestamp(ex.CreatedAt))
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return articlemd.Errorf(articlemd.ECONFLICT, "example already exists")
	}
	return err
}

// ImportExamples stores examples in one transaction, skipping any that are
// already present. Returns the number of examples added. Invalid examples
// abort the whole import.
func (s *ExampleService) ImportExamples(ctx context.Context, examples []*articlemd.LabeledExample) (int, error) {
	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return 0, articlemd.Errorf(articlemd.EINVALID, "example %d: %s", i, articlemd.ErrorMessage(err))
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Truncate(time.Second)
	var added int
	for _, ex := range examples {
		hash := hashContent(ex.Text)
		id := uuid.New().String()
		res, err := tx.ExecContext(ctx, `
			INSERT INTO examples (id, text, label, source, content_hash, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (label, content_hash) DO NOTHING
		`, id, ex.Text, string(ex.Label), ex.Source, hash, formatTimestamp(now))
		if err != nil {
			return 0, err
		}
		if n, _ := res.RowsAffected(); n == 1 {
			ex.ID, ex.ContentHash, ex.CreatedAt = id, hash, now
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// FindExamples retrieves examples matching the filter, oldest first.
func (s *ExampleService) FindExamples(ctx context.Context, filter articlemd.ExampleFilter) ([]*articlemd.LabeledExample, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, text, label, source, content_hash, created_at FROM examples WHERE 1=1")

	if filter.Label != nil {
		query.WriteString(" AND label = ?")
		args = append(args, string(*filter.Label))
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []*articlemd.LabeledExample
	for rows.Next() {
		var ex articlemd.LabeledExample
		var label, createdAt string

		if err := rows.Scan(&ex.ID, &ex.Text, &label, &ex.Source, &ex.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		ex.Label = articlemd.Label(label)
		if ex.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}

		examples = append(examples, &ex)
	}

	return examples, rows.Err()
}

// CountExamples returns the number of stored examples per label.
func (s *ExampleService) CountExamples(ctx context.Context) (map[articlemd.Label]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT label, COUNT(*) FROM examples GROUP BY label")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[articlemd.Label]int{
		articlemd.LabelMainContent:    0,
		articlemd.LabelNotMainContent: 0,
	}
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[articlemd.Label(label)] = n
	}
	return counts, rows.Err()
}

// DeleteExample permanently removes an example.
func (s *ExampleService) DeleteExample(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM examples WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return articlemd.Errorf(articlemd.ENOTFOUND, "example not found")
	}
	return nil
}
