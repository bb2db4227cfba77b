package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"certgen/api-gateway/models"
)

// templateRecord is the gorm row for a template. Inputs live in a JSON
// column so a template stays a single document.
type templateRecord struct {
	ID              string                                 `gorm:"primaryKey;type:varchar(36)"`
	Name            string                                 `gorm:"not null"`
	Width           int                                    `gorm:"not null"`
	Height          int                                    `gorm:"not null"`
	BackgroundImage string                                 `gorm:"type:text;not null"`
	Inputs          datatypes.JSONType[[]models.TextInput] `gorm:"not null"`
	CreatedAt       time.Time                              `gorm:"not null;autoCreateTime:false"`
}

// TableName goes through the namer so a configured schema prefix applies.
func (templateRecord) TableName(namer schema.Namer) string { return namer.TableName("Template") }

type statusCheckRecord struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	ClientName string    `gorm:"not null"`
	Timestamp  time.Time `gorm:"not null"`
}

func (statusCheckRecord) TableName(namer schema.Namer) string { return namer.TableName("StatusCheck") }

func toTemplateRecord(t models.Template) templateRecord {
	inputs := t.Inputs
	if inputs == nil {
		inputs = []models.TextInput{}
	}
	return templateRecord{
		ID:              t.ID,
		Name:            t.Name,
		Width:           t.Width,
		Height:          t.Height,
		BackgroundImage: t.BackgroundImage,
		Inputs:          datatypes.NewJSONType(inputs),
		CreatedAt:       t.CreatedAt,
	}
}

func (r templateRecord) toModel() models.Template {
	inputs := r.Inputs.Data()
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

// GormStore keeps documents in a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection and creates the tables.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&templateRecord{}, &statusCheckRecord{}); err != nil {
		return nil, fmt.Errorf("migrate tables: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) CreateTemplate(ctx context.Context, t models.Template) (models.Template, error) {
	rec := toTemplateRecord(t)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Template{}, fmt.Errorf("insert template: %w", err)
	}
	return rec.toModel(), nil
}

func (s *GormStore) ListTemplates(ctx context.Context) ([]models.Template, error) {
	var recs []templateRecord
	if err := s.db.WithContext(ctx).Limit(ListLimit).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	templates := make([]models.Template, 0, len(recs))
	for _, r := range recs {
		templates = append(templates, r.toModel())
	}
	return templates, nil
}

func (s *GormStore) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	var rec templateRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Template{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Template{}, fmt.Errorf("get template %s: %w", id, err)
	}
	return rec.toModel(), nil
}

func (s *GormStore) DeleteTemplate(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&templateRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete template %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) CreateStatusCheck(ctx context.Context, sc models.StatusCheck) (models.StatusCheck, error) {
	rec := statusCheckRecord{ID: sc.ID, ClientName: sc.ClientName, Timestamp: sc.Timestamp}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.StatusCheck{}, fmt.Errorf("insert status check: %w", err)
	}
	return sc, nil
}

func (s *GormStore) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	var recs []statusCheckRecord
	if err := s.db.WithContext(ctx).Limit(ListLimit).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	checks := make([]models.StatusCheck, 0, len(recs))
	for _, r := range recs {
		checks = append(checks, models.StatusCheck{ID: r.ID, ClientName: r.ClientName, Timestamp: r.Timestamp.UTC()})
	}
	return checks, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
