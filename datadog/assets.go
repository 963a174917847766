package datadog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AssetBundle holds the three static asset documents. They are raw API
// payloads; only title/name fields are inspected for the upsert keys.
type AssetBundle struct {
	Dashboard map[string]any
	Monitors  []map[string]any
	SLOs      []map[string]any
}

// LoadAssets reads dashboard.json, monitors.json and slos.json from dir.
func LoadAssets(dir string) (AssetBundle, error) {
	var bundle AssetBundle

	if err := loadJSON(filepath.Join(dir, "dashboard.json"), &bundle.Dashboard); err != nil {
		return AssetBundle{}, err
	}

	var monitors struct {
		Monitors []map[string]any `json:"monitors"`
	}
	if err := loadJSON(filepath.Join(dir, "monitors.json"), &monitors); err != nil {
		return AssetBundle{}, err
	}
	bundle.Monitors = monitors.Monitors

	var slos struct {
		SLOs []map[string]any `json:"slos"`
	}
	if err := loadJSON(filepath.Join(dir, "slos.json"), &slos); err != nil {
		return AssetBundle{}, err
	}
	bundle.SLOs = slos.SLOs

	return bundle, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// stringField pulls a string value out of a raw asset document.
func stringField(doc map[string]any, key string) string {
	v, _ := doc[key].(string)
	return v
}
