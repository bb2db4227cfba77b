// Package store persists templates and status checks. Backends share the
// Store interface so handlers never see which database sits behind it.
package store

import (
	"context"
	"errors"

	"certgen/api-gateway/models"
)

// ErrRecordNotFound is returned when no document has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// ListLimit caps the number of documents a list call returns.
const ListLimit = 1000

// Table names shared by every backend.
const (
	templatesTable    = "templates"
	statusChecksTable = "status_checks"
)

// Store is the document store behind the API.
type Store interface {
	CreateTemplate(ctx context.Context, t models.Template) (models.Template, error)
	ListTemplates(ctx context.Context) ([]models.Template, error)
	GetTemplate(ctx context.Context, id string) (models.Template, error)
	DeleteTemplate(ctx context.Context, id string) error

	CreateStatusCheck(ctx context.Context, s models.StatusCheck) (models.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)

	Ping(ctx context.Context) error
	Close() error
}
