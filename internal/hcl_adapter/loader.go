package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL walkthrough loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all top-level blocks of a walkthrough file.
type fileRoot struct {
	Steps []*stepBlock `hcl:"step,block"`
}

// stepBlock is the HCL schema of a single `step "<op>" { ... }` block.
type stepBlock struct {
	Op   string   `hcl:"op,label"`
	Body hcl.Body `hcl:",remain"`
}

// Load parses path, which may be a single .hcl file or a directory of them.
// Files in a directory are read in lexical order and their steps concatenated.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found at %s", path)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Steps {
			step, err := translateStep(ctx, block)
			if err != nil {
				return nil, err
			}
			model.Steps = append(model.Steps, step)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "steps", len(model.Steps))
	return model, nil
}
