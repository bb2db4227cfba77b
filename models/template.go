package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Default styling applied to text inputs that omit it.
const (
	DefaultFontSize   = 16
	DefaultFontFamily = "Arial"
	DefaultColor      = "#000000"
)

// ErrDuplicateInputID is returned when two inputs of one template share an id.
var ErrDuplicateInputID = errors.New("duplicate input id")

// TextInput is a positioned placeholder on a template.
type TextInput struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Placeholder string  `json:"placeholder"`
	FontSize    int     `json:"fontSize"`
	FontFamily  string  `json:"fontFamily"`
	Color       string  `json:"color"`
}

// Template represents a stored certificate layout.
type Template struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	BackgroundImage string      `json:"backgroundImage"` // base64 encoded
	Inputs          []TextInput `json:"inputs"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// TextInputCreate is a text input as submitted by a client.
// Pointers separate a missing field from an explicit zero value.
type TextInputCreate struct {
	ID          string   `json:"id,omitempty"`
	X           *float64 `json:"x" validate:"required"`
	Y           *float64 `json:"y" validate:"required"`
	Width       *float64 `json:"width" validate:"required"`
	Height      *float64 `json:"height" validate:"required"`
	Placeholder *string  `json:"placeholder" validate:"required"`
	FontSize    *int     `json:"fontSize,omitempty"`
	FontFamily  *string  `json:"fontFamily,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// TemplateCreate is the request body for creating a template.
type TemplateCreate struct {
	Name            *string           `json:"name" validate:"required"`
	Width           *int              `json:"width" validate:"required"`
	Height          *int              `json:"height" validate:"required"`
	BackgroundImage *string           `json:"backgroundImage" validate:"required"`
	Inputs          []TextInputCreate `json:"inputs" validate:"omitempty,dive"`
}

// ToTextInput fills in a fresh id and the default styling where missing.
func (in TextInputCreate) ToTextInput() TextInput {
	ti := TextInput{
		ID:         in.ID,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		Color:      DefaultColor,
	}
	if ti.ID == "" {
		ti.ID = uuid.NewString()
	}
	if in.X != nil {
		ti.X = *in.X
	}
	if in.Y != nil {
		ti.Y = *in.Y
	}
	if in.Width != nil {
		ti.Width = *in.Width
	}
	if in.Height != nil {
		ti.Height = *in.Height
	}
	if in.Placeholder != nil {
		ti.Placeholder = *in.Placeholder
	}
	if in.FontSize != nil {
		ti.FontSize = *in.FontSize
	}
	if in.FontFamily != nil {
		ti.FontFamily = *in.FontFamily
	}
	if in.Color != nil {
		ti.Color = *in.Color
	}
	return ti
}

// ToTemplate builds the document to persist. The template gets a new id and
// createdAt is now in UTC, truncated to microseconds so every backend
// returns the exact stored value.
func (tc TemplateCreate) ToTemplate(now time.Time) (Template, error) {
	t := Template{
		ID:        uuid.NewString(),
		Inputs:    make([]TextInput, 0, len(tc.Inputs)),
		CreatedAt: now.UTC().Truncate(time.Microsecond),
	}
	if tc.Name != nil {
		t.Name = *tc.Name
	}
	if tc.Width != nil {
		t.Width = *tc.Width
	}
	if tc.Height != nil {
		t.Height = *tc.Height
	}
	if tc.BackgroundImage != nil {
		t.BackgroundImage = *tc.BackgroundImage
	}

	seen := make(map[string]struct{}, len(tc.Inputs))
	for _, in := range tc.Inputs {
		ti := in.ToTextInput()
		if _, dup := seen[ti.ID]; dup {
			return Template{}, fmt.Errorf("%w: %s", ErrDuplicateInputID, ti.ID)
		}
		seen[ti.ID] = struct{}{}
		t.Inputs = append(t.Inputs, ti)
	}
	return t, nil
}
