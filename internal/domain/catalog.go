// Package domain defines the data model shared by the relevance engine,
// the catalog store and the HTTP API.
package domain

// CatalogRecord is a single bibliographic record as supplied by the catalog
// store. The engine only reads it; ownership stays with the store.
type CatalogRecord struct {
	ID                  string `db:"id"                   json:"id"`
	Title               string `db:"title"                json:"title"`
	Author              string `db:"author"               json:"author,omitempty"`
	Publisher           string `db:"publisher"            json:"publisher,omitempty"`
	YearRaw             string `db:"year_raw"             json:"year_raw,omitempty"`
	PhysicalDescription string `db:"physical_description" json:"physical_description,omitempty"`
	Category            string `db:"category"             json:"category,omitempty"`
	Description         string `db:"description"          json:"description,omitempty"`
}

// CollectionMetadata is the curator-supplied structured metadata attached to
// a collection. Absence of metadata is valid and means "no signal".
type CollectionMetadata struct {
	KeyThemes              []string `json:"key_themes"`
	GeographicFocus        []string `json:"geographic_focus"`
	HistoricalContext      string   `json:"historical_context"`
	ContentCharacteristics []string `json:"content_characteristics"`
}

// Collection is a user-curated, named grouping of catalog records.
type Collection struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	BookIDs  []string            `json:"book_ids"`
	Metadata *CollectionMetadata `json:"metadata,omitempty"`
}

// Contains reports whether the collection already holds the given record.
func (c Collection) Contains(bookID string) bool {
	for _, id := range c.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// BookMetadata is the structured metadata of a single book, either supplied
// by the catalog store or derived from the record text by the fallback
// extractor.
type BookMetadata struct {
	KeyThemes        []string `json:"key_themes"`
	GeographicFocus  []string `json:"geographic_focus"`
	HistoricalPeriod []string `json:"historical_period"`
	ContentType      string   `json:"content_type"`
}

// MetadataSource tags how a book's metadata was obtained.
type MetadataSource string

// Metadata sources.
const (
	MetadataSupplied MetadataSource = "supplied"
	MetadataDerived  MetadataSource = "derived"
)
