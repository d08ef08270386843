package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"example.com/fitplan/internal/domain"
)

// ExerciseSchema is the DQL schema the Dgraph source reads and writes.
const ExerciseSchema = `exercise_id: string @index(exact) @upsert .
name: string @index(term) .
difficulty: string @index(exact) .
targets: [string] @index(exact) .
requires: [string] .
last_updated: datetime .

type Exercise {
  exercise_id
  name
  difficulty
  targets
  requires
  last_updated
}
`

// DgraphSource reads and writes exercise nodes via Dgraph's HTTP API.
type DgraphSource struct {
	endpoint   string
	httpClient *http.Client
}

// NewDgraphSource constructs the source.
func NewDgraphSource(endpoint string, timeout time.Duration) *DgraphSource {
	return &DgraphSource{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// EnsureSchema applies ExerciseSchema.
func (s *DgraphSource) EnsureSchema(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/alter", strings.NewReader(ExerciseSchema))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/dql")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("dgraph schema load failed: %s", resp.Status)
	}
	return nil
}

// Upsert creates or updates an exercise node keyed by exercise_id.
func (s *DgraphSource) Upsert(ctx context.Context, exercise domain.Exercise) error {
	payload := map[string]interface{}{
		"query": fmt.Sprintf(`query { exercise as var(func: eq(exercise_id, %q)) }`, exercise.ID),
		"set":   []map[string]interface{}{buildExerciseMutation(exercise)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/mutate?commitNow=true", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("dgraph upsert failed: %s", resp.Status)
	}
	return nil
}

func buildExerciseMutation(exercise domain.Exercise) map[string]interface{} {
	node := map[string]interface{}{
		"uid":         "uid(exercise)",
		"dgraph.type": []string{"Exercise"},
		"exercise_id": exercise.ID,
		"name":        exercise.Name,
		"difficulty":  exercise.Difficulty,
		"targets":     exercise.Targets,
		"requires":    exercise.Requires,
	}
	if !exercise.LastUpdated.IsZero() {
		node["last_updated"] = exercise.LastUpdated.Format(time.RFC3339Nano)
	}
	return node
}

// Fetch returns up to limit exercise nodes ordered by name.
func (s *DgraphSource) Fetch(ctx context.Context, limit int) ([]domain.Exercise, error) {
	if limit <= 0 {
		limit = 500
	}
	query := fmt.Sprintf(`{
  exercises(func: type(Exercise), orderasc: name, first: %d) {
    exercise_id
    name
    difficulty
    targets
    requires
    last_updated
  }
}`, limit)

	result, err := s.executeQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, 0, len(result.Exercises))
	for _, node := range result.Exercises {
		if strings.TrimSpace(node.ExerciseID) == "" || strings.TrimSpace(node.Name) == "" {
			continue
		}
		exercises = append(exercises, node.toDomain())
	}
	return exercises, nil
}

// LoadInto fetches exercises and adds them to the catalog. It returns how
// many were new to the catalog.
func (s *DgraphSource) LoadInto(ctx context.Context, catalog *Catalog, limit int) (int, error) {
	exercises, err := s.Fetch(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("fetch exercises from dgraph: %w", err)
	}
	return catalog.Load(exercises), nil
}

type queryResponse struct {
	Exercises []exerciseNode `json:"exercises"`
}

type exerciseNode struct {
	ExerciseID         string   `json:"exercise_id"`
	Name               string   `json:"name"`
	Difficulty         string   `json:"difficulty"`
	Targets            []string `json:"targets"`
	Requires           []string `json:"requires"`
	LastUpdatedISO8601 string   `json:"last_updated"`
}

func (node exerciseNode) toDomain() domain.Exercise {
	var lastUpdated time.Time
	if node.LastUpdatedISO8601 != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, node.LastUpdatedISO8601); err == nil {
			lastUpdated = parsed
		}
	}
	return domain.Exercise{
		ID:          node.ExerciseID,
		Name:        node.Name,
		Difficulty:  node.Difficulty,
		Targets:     node.Targets,
		Requires:    node.Requires,
		LastUpdated: lastUpdated,
	}
}

func (s *DgraphSource) executeQuery(ctx context.Context, query string) (queryResponse, error) {
	body := map[string]interface{}{
		"query": query,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return queryResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/query", bytes.NewReader(payload))
	if err != nil {
		return queryResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return queryResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return queryResponse{}, fmt.Errorf("dgraph query failed: %s", resp.Status)
	}

	var wrapper struct {
		Data queryResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return queryResponse{}, err
	}
	return wrapper.Data, nil
}
