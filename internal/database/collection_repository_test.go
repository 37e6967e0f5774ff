package database

import (
	"database/sql"
	"testing"
)

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "empty yields nil", raw: "", want: nil},
		{name: "json array", raw: `["sejarah","budaya"]`, want: []string{"sejarah", "budaya"}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "malformed", raw: `{not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeStringList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCollectionRowToDomain(t *testing.T) {
	t.Run("without metadata columns", func(t *testing.T) {
		row := collectionRow{ID: "c1", Name: "Koleksi", BookIDs: `["b1","b2"]`}

		col, err := row.toDomain()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if col.Metadata != nil {
			t.Error("expected nil metadata when all metadata columns are NULL")
		}
		if !col.Contains("b1") || col.Contains("b9") {
			t.Errorf("unexpected book ids: %v", col.BookIDs)
		}
	})

	t.Run("with metadata", func(t *testing.T) {
		row := collectionRow{
			ID:                "c2",
			Name:              "Sejarah Jawa",
			BookIDs:           `[]`,
			KeyThemes:         sql.NullString{String: `["sejarah"]`, Valid: true},
			HistoricalContext: sql.NullString{String: "masa kolonial", Valid: true},
		}

		col, err := row.toDomain()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if col.Metadata == nil {
			t.Fatal("expected metadata")
		}
		if col.Metadata.HistoricalContext != "masa kolonial" {
			t.Errorf("unexpected historical context: %q", col.Metadata.HistoricalContext)
		}
		if len(col.Metadata.KeyThemes) != 1 || col.Metadata.KeyThemes[0] != "sejarah" {
			t.Errorf("unexpected themes: %v", col.Metadata.KeyThemes)
		}
	})

	t.Run("malformed book ids", func(t *testing.T) {
		row := collectionRow{ID: "c3", Name: "Rusak", BookIDs: `{`}
		if _, err := row.toDomain(); err == nil {
			t.Error("expected error for malformed book_ids")
		}
	})
}
