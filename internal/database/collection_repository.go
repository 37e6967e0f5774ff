package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pustakadigital/relevance/internal/domain"
)

// CollectionRepository reads curated collections for the recommendation API.
type CollectionRepository struct {
	db *sqlx.DB
}

// NewCollectionRepository creates a collection repository.
func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// collectionRow mirrors the collections table. List-valued columns hold JSON
// text; the metadata columns are nullable because curators add metadata
// after creating a collection.
type collectionRow struct {
	ID                     string         `db:"id"`
	Name                   string         `db:"name"`
	BookIDs                string         `db:"book_ids"`
	KeyThemes              sql.NullString `db:"key_themes"`
	GeographicFocus        sql.NullString `db:"geographic_focus"`
	HistoricalContext      sql.NullString `db:"historical_context"`
	ContentCharacteristics sql.NullString `db:"content_characteristics"`
}

const collectionColumns = `id, name, book_ids, key_themes, geographic_focus,
	historical_context, content_characteristics`

// List returns every collection, ordered by name for stable output.
func (r *CollectionRepository) List(ctx context.Context) ([]domain.Collection, error) {
	rows := []collectionRow{}
	query := fmt.Sprintf(`SELECT %s FROM collections ORDER BY name, id`, collectionColumns)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	collections := make([]domain.Collection, 0, len(rows))
	for _, row := range rows {
		col, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", row.ID, err)
		}
		collections = append(collections, col)
	}
	return collections, nil
}

// GetByID fetches a single collection.
func (r *CollectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM collections WHERE id = ?`, collectionColumns))

	var row collectionRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("collection %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get collection %s: %w", id, err)
	}
	col, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", id, err)
	}
	return &col, nil
}

func (row collectionRow) toDomain() (domain.Collection, error) {
	bookIDs, err := decodeStringList(row.BookIDs)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("book_ids: %w", err)
	}
	col := domain.Collection{
		ID:      row.ID,
		Name:    row.Name,
		BookIDs: bookIDs,
	}

	if !row.KeyThemes.Valid && !row.GeographicFocus.Valid &&
		!row.HistoricalContext.Valid && !row.ContentCharacteristics.Valid {
		return col, nil
	}

	meta := &domain.CollectionMetadata{HistoricalContext: row.HistoricalContext.String}
	if meta.KeyThemes, err = decodeStringList(row.KeyThemes.String); err != nil {
		return domain.Collection{}, fmt.Errorf("key_themes: %w", err)
	}
	if meta.GeographicFocus, err = decodeStringList(row.GeographicFocus.String); err != nil {
		return domain.Collection{}, fmt.Errorf("geographic_focus: %w", err)
	}
	if meta.ContentCharacteristics, err = decodeStringList(row.ContentCharacteristics.String); err != nil {
		return domain.Collection{}, fmt.Errorf("content_characteristics: %w", err)
	}
	col.Metadata = meta
	return col, nil
}

// decodeStringList reads a JSON string array column. Empty and NULL-backed
// values decode to nil.
func decodeStringList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
