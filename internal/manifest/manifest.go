// Package manifest defines the output document consumed by the web front
// end and its persistence.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"silhouette-tracer/pkg/geometry"
)

// Member is one person's entry: display metadata plus derived geometry.
// Created once per detected contour and immutable thereafter.
type Member struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	PathData      string           `json:"pathData"`
	NameTagAnchor geometry.Point2D `json:"nameTagAnchor"`
	HitArea       geometry.Rect    `json:"hitArea"`
}

// Document is the full output for one photo. Members are ordered by
// detected left-to-right position.
type Document struct {
	PhotoID string   `json:"photoId"`
	Members []Member `json:"members"`
}

// PersonMeta is the externally assigned identity for one detected person,
// applied in left-to-right order.
type PersonMeta struct {
	ID   string
	Name string
	Role string
}

// DefaultRoster returns the reference photo's six-person lineup: two
// bridesmaids, the bride, the groom, and two groomsmen, left to right.
func DefaultRoster() []PersonMeta {
	return []PersonMeta{
		{ID: "bridesmaid-1", Name: "Name 1", Role: "Bridesmaid"},
		{ID: "bridesmaid-2", Name: "Name 2", Role: "Bridesmaid"},
		{ID: "bride", Name: "Name 3", Role: "Bride"},
		{ID: "groom", Name: "Name 4", Role: "Groom"},
		{ID: "groomsman-1", Name: "Name 5", Role: "Groomsman"},
		{ID: "groomsman-2", Name: "Name 6", Role: "Groomsman"},
	}
}

// MetaFor returns the roster entry for a detected position, generating a
// placeholder when more contours were found than the roster covers.
func MetaFor(roster []PersonMeta, index int) PersonMeta {
	if index < len(roster) {
		return roster[index]
	}
	return PersonMeta{
		ID:   fmt.Sprintf("person-%d", index+1),
		Name: fmt.Sprintf("Name %d", index+1),
		Role: "Member",
	}
}

// Load reads a document from a JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save writes the document as indented JSON, creating parent directories
// as needed. Output is deterministic for identical input.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
