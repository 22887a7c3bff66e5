package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/config"
	"github.com/oksasatya/happnhere-api/pkg/helpers"
)

// Seed data mirrors the sample payloads from the API docs.
var (
	demoUser = map[string]any{
		"name":     "John Doe",
		"email":    "john.doe@example.com",
		"phone":    "9876543210",
		"password": "securepassword123",
	}
	demoEvent = map[string]any{
		"title":       "Goa Food Festival",
		"description": "Taste the best dishes in Goa!",
		"category":    "Food",
		"location":    "Panaji",
		"date_time":   "2025-08-20T18:00:00",
		"price":       200,
	}
	demoClub = map[string]any{
		"name":        "Goa Hikers Club",
		"description": "A club for hiking enthusiasts in Goa.",
	}
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := &seeder{base: strings.TrimRight(cfg.SeedAPIURL, "/"), http: &http.Client{Timeout: 10 * time.Second}, logger: logger}
	if err := s.run(ctx); err != nil {
		logger.WithError(err).Fatal("seed failed")
	}
}

type seeder struct {
	base   string
	http   *http.Client
	logger *logrus.Logger
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// run registers the demo user, then creates one event and one club on its
// behalf. An already registered demo user is not an error.
func (s *seeder) run(ctx context.Context) error {
	status, res, err := s.post(ctx, "/users/register", "", demoUser)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusCreated:
		s.logger.WithField("email", demoUser["email"]).Info("seeded demo user")
	case http.StatusBadRequest:
		s.logger.WithField("email", demoUser["email"]).Infof("demo user not created: %s", res.Message)
	default:
		return fmt.Errorf("register demo user: status %d: %s", status, res.Message)
	}

	status, res, err = s.post(ctx, "/users/login", "", map[string]any{
		"email":    demoUser["email"],
		"password": demoUser["password"],
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login demo user: status %d: %s", status, res.Message)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(res.Data, &login); err != nil {
		return fmt.Errorf("decode login: %w", err)
	}

	for _, item := range []struct {
		path string
		body map[string]any
		idOf string
	}{
		{"/events", demoEvent, "event_id"},
		{"/clubs", demoClub, "club_id"},
	} {
		status, res, err = s.post(ctx, item.path, login.Token, item.body)
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			return fmt.Errorf("seed %s: status %d: %s", item.path, status, res.Message)
		}
		var ids map[string]int64
		_ = json.Unmarshal(res.Data, &ids)
		s.logger.WithField(item.idOf, ids[item.idOf]).Infof("seeded %s", strings.TrimPrefix(item.path, "/"))
	}
	return nil
}

func (s *seeder) post(ctx context.Context, path, token string, body any) (int, apiResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, apiResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+path, bytes.NewReader(b))
	if err != nil {
		return 0, apiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return 0, apiResponse{}, fmt.Errorf("POST %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return resp.StatusCode, apiResponse{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return resp.StatusCode, out, nil
}
