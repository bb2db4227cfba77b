package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	postgrest "github.com/supabase-community/postgrest-go"

	"certgen/api-gateway/models"
)

// TableSource opens a query on a table. Both *postgrest.Client and the
// Supabase client satisfy it.
type TableSource interface {
	From(table string) *postgrest.QueryBuilder
}

// templateRow maps to the templates table. Inputs is a JSONB column.
type templateRow struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Width           int                `json:"width"`
	Height          int                `json:"height"`
	BackgroundImage string             `json:"background_image"`
	Inputs          []models.TextInput `json:"inputs"`
	CreatedAt       time.Time          `json:"created_at"`
}

func (r templateRow) toModel() models.Template {
	inputs := r.Inputs
	if inputs == nil {
		inputs = []models.TextInput{}
	}
	return models.Template{
		ID:              r.ID,
		Name:            r.Name,
		Width:           r.Width,
		Height:          r.Height,
		BackgroundImage: r.BackgroundImage,
		Inputs:          inputs,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

type statusCheckRow struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// PostgrestStore talks to a PostgREST endpoint, typically a Supabase project.
// The postgrest client carries no context, so ctx is not forwarded.
type PostgrestStore struct {
	client TableSource
}

// NewPostgrestStore returns a store on top of client.
func NewPostgrestStore(client TableSource) *PostgrestStore {
	return &PostgrestStore{client: client}
}

func (s *PostgrestStore) CreateTemplate(_ context.Context, t models.Template) (models.Template, error) {
	inputs := t.Inputs
	if inputs == nil {
		inputs = []models.TextInput{}
	}
	row := templateRow{
		ID:              t.ID,
		Name:            t.Name,
		Width:           t.Width,
		Height:          t.Height,
		BackgroundImage: t.BackgroundImage,
		Inputs:          inputs,
		CreatedAt:       t.CreatedAt,
	}

	body, _, err := s.client.From(templatesTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return models.Template{}, fmt.Errorf("insert template: %w", err)
	}

	var results []templateRow
	if err := json.Unmarshal(body, &results); err != nil {
		return models.Template{}, fmt.Errorf("decode inserted template: %w", err)
	}
	if len(results) == 0 {
		return models.Template{}, fmt.Errorf("no row returned after insert, id: %s", t.ID)
	}
	return results[0].toModel(), nil
}

func (s *PostgrestStore) ListTemplates(_ context.Context) ([]models.Template, error) {
	body, _, err := s.client.From(templatesTable).
		Select("*", "", false).
		Limit(ListLimit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	var rows []templateRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	templates := make([]models.Template, 0, len(rows))
	for _, r := range rows {
		templates = append(templates, r.toModel())
	}
	return templates, nil
}

func (s *PostgrestStore) GetTemplate(_ context.Context, id string) (models.Template, error) {
	body, _, err := s.client.From(templatesTable).
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		Execute()
	if err != nil {
		return models.Template{}, fmt.Errorf("get template %s: %w", id, err)
	}

	var rows []templateRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return models.Template{}, fmt.Errorf("decode template %s: %w", id, err)
	}
	if len(rows) == 0 {
		return models.Template{}, ErrRecordNotFound
	}
	return rows[0].toModel(), nil
}

// DeleteTemplate asks PostgREST to return the deleted rows, which is the
// only way to tell a delete that matched nothing from one that succeeded.
func (s *PostgrestStore) DeleteTemplate(_ context.Context, id string) error {
	body, _, err := s.client.From(templatesTable).
		Delete("representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete template %s: %w", id, err)
	}

	var deleted []templateRow
	if err := json.Unmarshal(body, &deleted); err != nil {
		return fmt.Errorf("decode deleted template %s: %w", id, err)
	}
	if len(deleted) == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *PostgrestStore) CreateStatusCheck(_ context.Context, sc models.StatusCheck) (models.StatusCheck, error) {
	row := statusCheckRow{ID: sc.ID, ClientName: sc.ClientName, Timestamp: sc.Timestamp}
	body, _, err := s.client.From(statusChecksTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return models.StatusCheck{}, fmt.Errorf("insert status check: %w", err)
	}

	var results []statusCheckRow
	if err := json.Unmarshal(body, &results); err != nil {
		return models.StatusCheck{}, fmt.Errorf("decode inserted status check: %w", err)
	}
	if len(results) == 0 {
		return models.StatusCheck{}, fmt.Errorf("no row returned after insert, id: %s", sc.ID)
	}
	r := results[0]
	return models.StatusCheck{ID: r.ID, ClientName: r.ClientName, Timestamp: r.Timestamp.UTC()}, nil
}

func (s *PostgrestStore) ListStatusChecks(_ context.Context) ([]models.StatusCheck, error) {
	body, _, err := s.client.From(statusChecksTable).
		Select("*", "", false).
		Limit(ListLimit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	var rows []statusCheckRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	checks := make([]models.StatusCheck, 0, len(rows))
	for _, r := range rows {
		checks = append(checks, models.StatusCheck{ID: r.ID, ClientName: r.ClientName, Timestamp: r.Timestamp.UTC()})
	}
	return checks, nil
}

// Ping issues the cheapest query PostgREST accepts against the templates table.
func (s *PostgrestStore) Ping(_ context.Context) error {
	_, _, err := s.client.From(templatesTable).
		Select("id", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return fmt.Errorf("ping postgrest: %w", err)
	}
	return nil
}

// Close is a no-op; the PostgREST client holds no persistent connection.
func (s *PostgrestStore) Close() error { return nil }
