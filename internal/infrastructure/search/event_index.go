package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/happnhere-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// EventIndex keeps a searchable copy of events in Elasticsearch.
type EventIndex struct {
	ES        *elasticsearch.Client
	IndexName string
}

func NewEventIndex(es *elasticsearch.Client, index string) *EventIndex {
	return &EventIndex{ES: es, IndexName: index}
}

type eventDoc struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	DateTime    string    `json:"date_time"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (x *EventIndex) Index(ctx context.Context, e entity.Event) error {
	b, err := json.Marshal(eventDoc{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		DateTime:    e.DateTime,
		Price:       e.Price,
		CreatedAt:   e.CreatedAt,
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.IndexName,
		DocumentID: strconv.FormatInt(e.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Remove deletes the event document. A missing document is not an error.
func (x *EventIndex) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: x.IndexName, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over title, category and location and returns
// the matching event ids ordered by score.
func (x *EventIndex) Search(ctx context.Context, q string, size int) ([]int64, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"title^2", "category", "location"},
				"fuzziness": "AUTO",
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.IndexName),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
