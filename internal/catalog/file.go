package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisdamba/foodstories/internal/models"
	"gopkg.in/yaml.v3"
)

// document is the on-disk catalog layout.
type document struct {
	Restaurants []models.Restaurant `json:"restaurants" yaml:"restaurants"`
}

// Decode parses a catalog document. Names ending in .json are read as
// JSON, everything else as YAML.
func Decode(name string, data []byte) ([]models.Restaurant, error) {
	var doc document
	var err error
	if strings.EqualFold(filepath.Ext(name), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", name, err)
	}
	return doc.Restaurants, nil
}

// Encode renders restaurants in the format implied by name.
func Encode(name string, restaurants []models.Restaurant) ([]byte, error) {
	doc := document{Restaurants: restaurants}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// File reads a YAML or JSON catalog from disk on every call.
type File struct {
	Path string
}

func (f File) Restaurants(context.Context) ([]models.Restaurant, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Decode(f.Path, data)
}
