package api

import "github.com/pustakadigital/relevance/internal/domain"

// SearchRequest asks for catalog records ranked against a query. Records may
// be supplied inline; when omitted, candidates come from the catalog store.
type SearchRequest struct {
	Query   string                 `json:"query" binding:"required"`
	Records []domain.CatalogRecord `json:"records,omitempty"`
	Limit   int                    `json:"limit,omitempty"`
}

// SearchResponse carries the ranked results.
type SearchResponse struct {
	Results []domain.Scored[domain.CatalogRecord] `json:"results"`
	Total   int                                   `json:"total"`
}

// RecommendRequest asks for collection recommendations for one book. The
// book can be inline or referenced by id, and candidate collections can be
// inline or loaded from the store.
type RecommendRequest struct {
	Book       *domain.CatalogRecord `json:"book,omitempty"`
	BookID     string                `json:"book_id,omitempty"`
	Metadata   *domain.BookMetadata  `json:"metadata,omitempty"`
	Candidates []domain.Collection   `json:"candidates,omitempty"`
}

// RecommendResponse carries the scored recommendations.
type RecommendResponse struct {
	Recommendations []domain.Scored[domain.Collection] `json:"recommendations"`
	Total           int                                `json:"total"`
}

// ClassifyRequest asks for the characteristics of one record.
type ClassifyRequest struct {
	Record domain.CatalogRecord `json:"record" binding:"required"`
}

// ClassifyResponse carries the derived characteristics.
type ClassifyResponse struct {
	Characteristics domain.Characteristics `json:"characteristics"`
}

// ClassifyBatchRequest asks for characteristics of many records at once.
type ClassifyBatchRequest struct {
	Records []domain.CatalogRecord `json:"records" binding:"required"`
}

// ClassifyBatchResponse carries per-record characteristics in input order.
type ClassifyBatchResponse struct {
	Results []domain.Characteristics `json:"results"`
	Total   int                      `json:"total"`
}

// LanguageRequest asks for language detection on free text.
type LanguageRequest struct {
	Text string `json:"text" binding:"required"`
}

// LanguageResponse carries the detected language.
type LanguageResponse struct {
	Language domain.LanguageCode `json:"language"`
}

// TopicsRequest asks for topic extraction on a title.
type TopicsRequest struct {
	Title string `json:"title" binding:"required"`
}

// TopicsResponse carries the extracted topics.
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
