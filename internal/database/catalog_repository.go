package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pustakadigital/relevance/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// defaultCandidateLimit bounds how many rows a candidate query pulls for the
// in-process ranker.
const defaultCandidateLimit = 500

// CatalogRepository reads catalog records for the search API. It performs
// only coarse candidate retrieval; exact scoring happens in the engine.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a catalog repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Ping verifies the store connection for readiness checks.
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// GetByID fetches a single catalog record.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.CatalogRecord, error) {
	query := r.db.Rebind(`
		SELECT id, title, author, publisher, year_raw,
		       physical_description, category, description
		FROM catalog_records
		WHERE id = ?`)

	var rec domain.CatalogRecord
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get catalog record %s: %w", id, err)
	}
	return &rec, nil
}

// SearchCandidates retrieves records whose title, author or publisher
// contains the query phrase or any of its words. The result is a superset
// of what the ranker will keep.
func (r *CatalogRepository) SearchCandidates(ctx context.Context, query string, limit int) ([]domain.CatalogRecord, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.CatalogRecord{}, nil
	}
	if limit <= 0 || limit > defaultCandidateLimit {
		limit = defaultCandidateLimit
	}

	terms := append([]string{q}, strings.Fields(q)...)
	conds := make([]string, 0, len(terms)*3)
	args := make([]any, 0, len(terms)*3)
	for _, term := range terms {
		pattern := "%" + term + "%"
		for _, col := range []string{"title", "author", "publisher"} {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, pattern)
		}
	}
	args = append(args, limit)

	stmt := r.db.Rebind(fmt.Sprintf(`
		SELECT id, title, author, publisher, year_raw,
		       physical_description, category, description
		FROM catalog_records
		WHERE %s
		ORDER BY id
		LIMIT ?`, strings.Join(conds, " OR ")))

	records := []domain.CatalogRecord{}
	if err := r.db.SelectContext(ctx, &records, stmt, args...); err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	return records, nil
}

// GetBookMetadata fetches the structured metadata of a book, or nil when
// none has been stored. The engine derives metadata in that case.
func (r *CatalogRepository) GetBookMetadata(ctx context.Context, bookID string) (*domain.BookMetadata, error) {
	query := r.db.Rebind(`
		SELECT key_themes, geographic_focus, historical_period, content_type
		FROM book_metadata
		WHERE book_id = ?`)

	var row struct {
		KeyThemes        string `db:"key_themes"`
		GeographicFocus  string `db:"geographic_focus"`
		HistoricalPeriod string `db:"historical_period"`
		ContentType      string `db:"content_type"`
	}
	if err := r.db.GetContext(ctx, &row, query, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book metadata %s: %w", bookID, err)
	}

	meta := &domain.BookMetadata{ContentType: row.ContentType}
	var err error
	if meta.KeyThemes, err = decodeStringList(row.KeyThemes); err != nil {
		return nil, fmt.Errorf("book metadata %s key_themes: %w", bookID, err)
	}
	if meta.GeographicFocus, err = decodeStringList(row.GeographicFocus); err != nil {
		return nil, fmt.Errorf("book metadata %s geographic_focus: %w", bookID, err)
	}
	if meta.HistoricalPeriod, err = decodeStringList(row.HistoricalPeriod); err != nil {
		return nil, fmt.Errorf("book metadata %s historical_period: %w", bookID, err)
	}
	return meta, nil
}
