package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var errNotAnObject = errors.New("top-level value is not an object")

// fileLayer is one successfully decoded configuration file.
type fileLayer struct {
	path   string
	values map[string]any
}

// decodeSource decodes data as a flat key/value object. Files ending in .yaml
// or .yml are YAML; everything else is JSON, with comments and trailing
// commas tolerated.
//
// Keys holding null or an empty string are dropped, so they never shadow a
// value from an earlier file.
func decodeSource(path string, data []byte) (map[string]any, error) {
	var (
		values map[string]any
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = decodeYAML(data)
	default:
		values, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}

	for key, v := range values {
		if isBlank(v) {
			delete(values, key)
		}
	}
	return values, nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	// snowflake ids overflow float64 precision
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("error decoding json: unexpected data after top-level object")
	}
	if values == nil {
		return nil, errNotAnObject
	}

	return values, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}
	if values == nil {
		return nil, errNotAnObject
	}

	return values, nil
}

// mergeLayers folds layers left to right so that the rightmost file wins for
// every key. It also reports which file supplied each surviving key.
func mergeLayers(layers []fileLayer) (map[string]any, map[string]string, error) {
	merged := make(map[string]any)
	origins := make(map[string]string)

	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer.values, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging %s: %w", layer.path, err)
		}
		for key := range layer.values {
			origins[key] = layer.path
		}
	}

	return merged, origins, nil
}
