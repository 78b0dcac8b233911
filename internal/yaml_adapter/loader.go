// Package yaml_adapter loads list walkthroughs written in YAML and
// translates them into the format-agnostic config.Model.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML walkthrough loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Steps []yaml.Node `yaml:"steps"`
}

type stepEntry struct {
	Op     string `yaml:"op"`
	Values []int  `yaml:"values"`
	Index  *int   `yaml:"index"`
	Value  *int   `yaml:"value"`
}

var stepFields = map[string]bool{"op": true, "values": true, "index": true, "value": true}

// Load parses the YAML walkthrough file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root fileRoot
	err = dec.Decode(&root)
	if err == nil {
		// Later documents would be dropped silently.
		var extra yaml.Node
		if err = dec.Decode(&extra); err == nil {
			err = errors.New("multiple YAML documents are not supported")
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	model := &config.Model{}
	for i := range root.Steps {
		node := &root.Steps[i]
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("failed to decode YAML file %s: line %d: step entry must be a mapping", path, node.Line)
		}
		// Node.Decode does not inherit KnownFields, so keys are checked here.
		for k := 0; k < len(node.Content); k += 2 {
			if key := node.Content[k].Value; !stepFields[key] {
				return nil, fmt.Errorf("failed to decode YAML file %s: line %d: unknown field %q", path, node.Content[k].Line, key)
			}
		}

		var e stepEntry
		if err := node.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
		model.Steps = append(model.Steps, &config.Step{
			Op:     config.Op(e.Op),
			Values: e.Values,
			Index:  e.Index,
			Value:  e.Value,
			Source: fmt.Sprintf("%s:%d", filepath.Base(path), node.Line),
		})
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("YAML loading complete.", "steps", len(model.Steps))
	return model, nil
}
