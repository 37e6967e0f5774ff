package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pustakadigital/relevance/internal/database"
	"github.com/pustakadigital/relevance/internal/domain"
	"github.com/pustakadigital/relevance/internal/engine"
	"github.com/pustakadigital/relevance/internal/logging"
)

// CatalogStore is the subset of the catalog repository the handlers need.
type CatalogStore interface {
	GetByID(ctx context.Context, id string) (*domain.CatalogRecord, error)
	SearchCandidates(ctx context.Context, query string, limit int) ([]domain.CatalogRecord, error)
	GetBookMetadata(ctx context.Context, bookID string) (*domain.BookMetadata, error)
}

// CollectionStore is the subset of the collection repository the handlers need.
type CollectionStore interface {
	List(ctx context.Context) ([]domain.Collection, error)
}

// Handler holds the HTTP handlers of the relevance service. Both stores are
// optional: without them every request must carry inline candidates.
type Handler struct {
	engine      *engine.Engine
	catalog     CatalogStore
	collections CollectionStore
	logger      logging.Logger
	serviceName string
}

// NewHandler creates the handler set.
func NewHandler(eng *engine.Engine, catalog CatalogStore, collections CollectionStore, logger logging.Logger, serviceName string) *Handler {
	return &Handler{
		engine:      eng,
		catalog:     catalog,
		collections: collections,
		logger:      logger,
		serviceName: serviceName,
	}
}

// Search ranks catalog records against a query.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	records := req.Records
	if len(records) == 0 {
		if h.catalog == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no records supplied and no catalog store configured"})
			return
		}
		var err error
		records, err = h.catalog.SearchCandidates(c.Request.Context(), req.Query, req.Limit)
		if err != nil {
			h.logger.Error("candidate retrieval failed", "query", req.Query, "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "candidate retrieval failed"})
			return
		}
	}

	results := h.engine.Search(c.Request.Context(), records, req.Query)
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results, Total: len(results)})
}

// Recommend scores collections for one book and returns the best matches.
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	book, meta, candidates, status, errMsg := h.resolveRecommendInputs(c.Request.Context(), &req)
	if errMsg != "" {
		c.JSON(status, ErrorResponse{Error: errMsg})
		return
	}

	recs := h.engine.Recommend(c.Request.Context(), *book, meta, candidates)
	c.JSON(http.StatusOK, RecommendResponse{Recommendations: recs, Total: len(recs)})
}

// resolveRecommendInputs fills in the book, its metadata and the candidate
// collections from the request or the stores.
func (h *Handler) resolveRecommendInputs(ctx context.Context, req *RecommendRequest) (*domain.CatalogRecord, *domain.BookMetadata, []domain.Collection, int, string) {
	book := req.Book
	if book == nil {
		if req.BookID == "" {
			return nil, nil, nil, http.StatusBadRequest, "either book or book_id is required"
		}
		if h.catalog == nil {
			return nil, nil, nil, http.StatusBadRequest, "book_id given but no catalog store configured"
		}
		rec, err := h.catalog.GetByID(ctx, req.BookID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, nil, nil, http.StatusNotFound, "book not found: " + req.BookID
			}
			h.logger.Error("book lookup failed", "book_id", req.BookID, "error", err)
			return nil, nil, nil, http.StatusInternalServerError, "book lookup failed"
		}
		book = rec
	}

	meta := req.Metadata
	if meta == nil && h.catalog != nil && book.ID != "" {
		stored, err := h.catalog.GetBookMetadata(ctx, book.ID)
		if err != nil {
			h.logger.Warn("book metadata lookup failed, deriving from record text",
				"book_id", book.ID, "error", err)
		} else {
			meta = stored
		}
	}

	candidates := req.Candidates
	if len(candidates) == 0 {
		if h.collections == nil {
			return nil, nil, nil, http.StatusBadRequest, "no candidates supplied and no collection store configured"
		}
		list, err := h.collections.List(ctx)
		if err != nil {
			h.logger.Error("collection listing failed", "error", err)
			return nil, nil, nil, http.StatusInternalServerError, "collection listing failed"
		}
		candidates = list
	}
	return book, meta, candidates, http.StatusOK, ""
}

// Classify derives the characteristics of one record.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	ch := h.engine.Characteristics(c.Request.Context(), req.Record)
	c.JSON(http.StatusOK, ClassifyResponse{Characteristics: ch})
}

// ClassifyBatch derives characteristics for many records in input order.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req ClassifyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	results := h.engine.CharacteristicsBatch(c.Request.Context(), req.Records)
	c.JSON(http.StatusOK, ClassifyBatchResponse{Results: results, Total: len(results)})
}

// DetectLanguage classifies free text.
func (h *Handler) DetectLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	code := h.engine.DetectLanguage(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, LanguageResponse{Language: code})
}

// ExtractTopics extracts topic categories from a title.
func (h *Handler) ExtractTopics(c *gin.Context) {
	var req TopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	topics := h.engine.ExtractTopics(c.Request.Context(), req.Title)
	c.JSON(http.StatusOK, TopicsResponse{Topics: topics})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.engine.Version(),
	})
}

// Ready reports readiness. The engine is in-process, so readiness equals
// liveness unless a catalog store is configured and unreachable.
func (h *Handler) Ready(c *gin.Context) {
	if pinger, ok := h.catalog.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "catalog store unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ready",
		Service: h.serviceName,
		Version: h.engine.Version(),
	})
}
