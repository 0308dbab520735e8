// Package deck loads the slide definitions a carousel cycles through.
// Decks are read-only configuration; carousel state is never written back.
package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptySlideID      = errors.New("slide id is empty")
	ErrDuplicateSlide    = errors.New("duplicate slide id")
	ErrUnsupportedFormat = errors.New("unsupported deck format")
)

// Slide is one carousel item.
type Slide struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Words       []string `json:"words,omitempty" yaml:"words,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Price       string   `json:"price,omitempty" yaml:"price,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Headline returns the words revealed on entry, falling back to the
// title split on whitespace.
func (s Slide) Headline() []string {
	if len(s.Words) > 0 {
		return s.Words
	}
	return strings.Fields(s.Title)
}

// Deck is an ordered list of slides.
type Deck struct {
	Name   string  `json:"name" yaml:"name"`
	Slides []Slide `json:"slides" yaml:"slides"`
}

// Len returns the slide count.
func (d Deck) Len() int { return len(d.Slides) }

// Validate rejects blank and duplicate slide IDs. An empty deck is valid.
func (d Deck) Validate() error {
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("slide %d: %w", i, ErrEmptySlideID)
		}
		if prev, ok := seen[s.ID]; ok {
			return fmt.Errorf("slide %d %q (first at %d): %w", i, s.ID, prev, ErrDuplicateSlide)
		}
		seen[s.ID] = i
	}
	return nil
}

// Load reads a deck from path, choosing the decoder by extension.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read %s: %w", path, err)
	}

	var d Deck
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Deck{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return Deck{}, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return Deck{}, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := d.Validate(); err != nil {
		return Deck{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return d, nil
}

// Sample is the built-in deck used when no file is configured.
func Sample() Deck {
	return Deck{
		Name: "sample",
		Slides: []Slide{
			{ID: "sensor", Title: "Smart Sensor", Description: "Continuous monitoring for industrial lines.", Price: "R$ 1.299,00"},
			{ID: "gateway", Title: "Edge Gateway", Description: "Collects and forwards plant telemetry.", Price: "R$ 2.499,00"},
			{ID: "panel", Title: "Control Panel", Description: "Touch interface for line operators.", Price: "R$ 3.899,00"},
			{ID: "analytics", Title: "Cloud Analytics", Description: "Dashboards and alerts for every site.", Price: "R$ 199,00/mês"},
		},
	}
}
