// This file translates decoded HCL step blocks into the format-agnostic
// configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var errNull = errors.New("must not be null")

// translateStep converts one HCL step block into a config.Step.
func translateStep(ctx context.Context, b *stepBlock) (*config.Step, error) {
	rng := b.Body.MissingItemRange()
	source := fmt.Sprintf("%s:%d", filepath.Base(rng.Filename), rng.Start.Line)
	logger := ctxlog.FromContext(ctx).With("op", b.Op, "source", source)
	logger.Debug("Translating HCL step to internal config model.")

	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("step %q at %s: %w", b.Op, source, diags)
	}

	step := &config.Step{Op: config.Op(b.Op), Source: source}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("step %q at %s: %w", b.Op, source, diags)
		}

		var err error
		switch name {
		case "values":
			step.Values, err = toIntList(val)
		case "index":
			step.Index, err = toInt(val)
		case "value":
			step.Value, err = toInt(val)
		default:
			err = fmt.Errorf("unsupported attribute %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("step %q at %s: attribute %q: %w", b.Op, source, name, attrRangeErr(attr, err))
		}
	}

	logger.Debug("HCL step translated.", "attributes", len(attrs))
	return step, nil
}

// toIntList converts a tuple or list value into []int. The result is never nil.
func toIntList(val cty.Value) ([]int, error) {
	if val.IsNull() {
		return nil, errNull
	}
	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, err
	}
	out := []int{}
	if list.LengthInt() == 0 {
		return out, nil
	}
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toInt converts a whole-number value into *int.
func toInt(val cty.Value) (*int, error) {
	if val.IsNull() {
		return nil, errNull
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, err
	}
	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// attrRangeErr tags err with the attribute's source range.
func attrRangeErr(attr *hcl.Attribute, err error) error {
	return fmt.Errorf("%s: %w", attr.Range.String(), err)
}
