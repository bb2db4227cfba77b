package store_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"certgen/api-gateway/internal/store"
	"certgen/api-gateway/models"
)

// --- test helpers -----------------------------------------------------------

func newGormStore(t *testing.T) *store.GormStore {
	t.Helper()
	// One in-memory database per test.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st, err := store.NewGormStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleTemplate(name string) models.Template {
	return models.Template{
		ID:              uuid.NewString(),
		Name:            name,
		Width:           800,
		Height:          600,
		BackgroundImage: "data:image/png;base64,iVBORw0KGgo=",
		Inputs: []models.TextInput{{
			ID: uuid.NewString(), X: 100, Y: 150, Width: 300, Height: 50,
			Placeholder: "Name", FontSize: 16, FontFamily: "Arial", Color: "#000000",
		}},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func assertSameTemplate(t *testing.T, got, want models.Template) {
	t.Helper()
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt: got %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	got.CreatedAt, want.CreatedAt = time.Time{}, time.Time{}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("template mismatch:\n got  %+v\n want %+v", got, want)
	}
}

// --- templates --------------------------------------------------------------

func TestGormTemplateRoundTrip(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()
	want := sampleTemplate("Cert")

	created, err := st.CreateTemplate(ctx, want)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	assertSameTemplate(t, created, want)

	got, err := st.GetTemplate(ctx, want.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertSameTemplate(t, got, want)
}

func TestGormTemplateWithoutInputs(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()
	tmpl := sampleTemplate("Blank")
	tmpl.Inputs = nil

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := st.GetTemplate(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Inputs == nil || len(got.Inputs) != 0 {
		t.Errorf("inputs: got %#v, want empty slice", got.Inputs)
	}
}

func TestGormUnknownTemplate(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()

	if _, err := st.GetTemplate(ctx, "nonexistent-id"); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get: got %v, want ErrRecordNotFound", err)
	}
	if err := st.DeleteTemplate(ctx, "nonexistent-id"); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("delete: got %v, want ErrRecordNotFound", err)
	}
}

func TestGormDeleteTemplate(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()
	tmpl := sampleTemplate("Doomed")
	keep := sampleTemplate("Kept")

	for _, tt := range []models.Template{tmpl, keep} {
		if _, err := st.CreateTemplate(ctx, tt); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := st.DeleteTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get after delete: got %v, want ErrRecordNotFound", err)
	}
	if err := st.DeleteTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("second delete: got %v, want ErrRecordNotFound", err)
	}
	if _, err := st.GetTemplate(ctx, keep.ID); err != nil {
		t.Errorf("other template affected: %v", err)
	}
}

func TestGormListTemplates(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()

	empty, err := st.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty list: got %#v", empty)
	}

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := st.CreateTemplate(ctx, sampleTemplate("Same name")); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	templates, err := st.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(templates) != n {
		t.Fatalf("count: got %d, want %d", len(templates), n)
	}
	seen := map[string]bool{}
	for _, tt := range templates {
		if seen[tt.ID] {
			t.Errorf("duplicate id %s", tt.ID)
		}
		seen[tt.ID] = true
	}
}

// --- status checks ----------------------------------------------------------

func TestGormStatusChecks(t *testing.T) {
	st := newGormStore(t)
	ctx := context.Background()
	check := models.StatusCheck{ID: uuid.NewString(), ClientName: "frontend", Timestamp: time.Now().UTC().Truncate(time.Microsecond)}

	created, err := st.CreateStatusCheck(ctx, check)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created != check {
		t.Errorf("create: got %+v, want %+v", created, check)
	}

	checks, err := st.ListStatusChecks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("count: got %d, want 1", len(checks))
	}
	if checks[0].ID != check.ID || checks[0].ClientName != "frontend" || !checks[0].Timestamp.Equal(check.Timestamp) {
		t.Errorf("listed: got %+v, want %+v", checks[0], check)
	}
}

func TestGormListStatusChecksIsCapped(t *testing.T) {
	if testing.Short() {
		t.Skip("inserts more than ListLimit rows")
	}
	st := newGormStore(t)
	ctx := context.Background()

	for i := 0; i < store.ListLimit+5; i++ {
		check := models.StatusCheck{ID: uuid.NewString(), ClientName: "load", Timestamp: time.Now().UTC()}
		if _, err := st.CreateStatusCheck(ctx, check); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	checks, err := st.ListStatusChecks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(checks) != store.ListLimit {
		t.Errorf("count: got %d, want %d", len(checks), store.ListLimit)
	}
}

func TestGormPing(t *testing.T) {
	st := newGormStore(t)
	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}
