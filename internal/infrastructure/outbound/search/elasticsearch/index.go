package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sony/gobreaker"
)

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":              {"type": "long"},
      "author_username": {"type": "keyword"},
      "body":            {"type": "text"},
      "language":        {"type": "keyword"}
    }
  }
}`

// Index stores posts as documents keyed by post id. Every call goes through a
// circuit breaker so a dead cluster fails fast instead of stalling requests.
type Index struct {
	es    *elasticsearch.Client
	index string
	cb    *gobreaker.CircuitBreaker
	log   ports.Logger
}

func NewIndex(cfg config.Search, log ports.Logger) (*Index, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: cfg.Addresses})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return NewIndexFrom(es, cfg.Index, log), nil
}

func NewIndexFrom(es *elasticsearch.Client, index string, log ports.Logger) *Index {
	st := gobreaker.Settings{
		Name:        "SearchIndex",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	return &Index{
		es:    es,
		index: index,
		cb:    gobreaker.NewCircuitBreaker(st),
		log:   log,
	}
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (i *Index) EnsureIndex(ctx context.Context) error {
	_, err := i.cb.Execute(func() (interface{}, error) {
		res, err := i.es.Indices.Exists([]string{i.index}, i.es.Indices.Exists.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		res.Body.Close()
		if res.StatusCode == http.StatusOK {
			return nil, nil
		}

		res, err = i.es.Indices.Create(i.index,
			i.es.Indices.Create.WithContext(ctx),
			i.es.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))))
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		return nil, responseError(res)
	})
	if err != nil {
		i.log.Error("Failed to ensure search index", slog.String("index", i.index), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", custom_errors.ErrExternalServiceError, err)
	}
	return nil
}

func (i *Index) Index(ctx context.Context, doc *model.SearchDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal search document: %w", err)
	}

	_, err = i.cb.Execute(func() (interface{}, error) {
		res, err := i.es.Index(i.index, bytes.NewReader(body),
			i.es.Index.WithContext(ctx),
			i.es.Index.WithDocumentID(strconv.FormatInt(doc.ID, 10)))
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		return nil, responseError(res)
	})
	if err != nil {
		i.log.Debug("Failed to index document", slog.Int64("post_id", doc.ID), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", custom_errors.ErrExternalServiceError, err)
	}
	return nil
}

// Count reports the number of indexed documents. A missing index counts as
// empty.
func (i *Index) Count(ctx context.Context) (int64, error) {
	result, err := i.cb.Execute(func() (interface{}, error) {
		res, err := i.es.Count(i.es.Count.WithContext(ctx), i.es.Count.WithIndex(i.index))
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		if res.StatusCode == http.StatusNotFound {
			return int64(0), nil
		}
		if err := responseError(res); err != nil {
			return nil, err
		}

		var body struct {
			Count int64 `json:"count"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode count response: %w", err)
		}
		return body.Count, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", custom_errors.ErrExternalServiceError, err)
	}
	return result.(int64), nil
}

type queryHits struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

func (i *Index) Query(ctx context.Context, text string, from, size int) ([]int64, int, error) {
	query, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"match": map[string]any{"body": text},
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal search query: %w", err)
	}

	result, err := i.cb.Execute(func() (interface{}, error) {
		res, err := i.es.Search(
			i.es.Search.WithContext(ctx),
			i.es.Search.WithIndex(i.index),
			i.es.Search.WithBody(bytes.NewReader(query)),
			i.es.Search.WithFrom(from),
			i.es.Search.WithSize(size),
			i.es.Search.WithTrackTotalHits(true))
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		if res.StatusCode == http.StatusNotFound {
			return &queryHits{}, nil
		}
		if err := responseError(res); err != nil {
			return nil, err
		}

		var hits queryHits
		if err := json.NewDecoder(res.Body).Decode(&hits); err != nil {
			return nil, fmt.Errorf("failed to decode search response: %w", err)
		}
		return &hits, nil
	})
	if err != nil {
		i.log.Error("Search query failed", slog.String("query", text), slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%w: %v", custom_errors.ErrExternalServiceError, err)
	}

	hits := result.(*queryHits)
	ids := make([]int64, 0, len(hits.Hits.Hits))
	for _, hit := range hits.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			i.log.Warn("Skipping search hit with non numeric id", slog.String("id", hit.ID))
			continue
		}
		ids = append(ids, id)
	}
	return ids, hits.Hits.Total.Value, nil
}

func responseError(res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("elasticsearch returned %s: %s", res.Status(), bytes.TrimSpace(body))
}
