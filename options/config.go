package options

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// fileConfig is the HCL shape of an options file:
//
//	output_style  = "compressed"
//	include_paths = ["scss/lib", "vendor"] # or "scss/lib:vendor"
//	image_path    = "img"
type fileConfig struct {
	OutputStyle  string         `hcl:"output_style"`
	IncludePaths hcl.Expression `hcl:"include_paths"`
	ImagePath    string         `hcl:"image_path"`
}

// LoadFile reads an HCL (or HCL JSON, by extension) options file.
func LoadFile(path string) (*Options, error) {
	var cfg fileConfig
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg.build()
}

// Decode parses options from src. filename selects the syntax (".hcl" or
// ".json") and is used in diagnostics.
func Decode(filename string, src []byte) (*Options, error) {
	var cfg fileConfig
	if err := hclsimple.Decode(filename, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg.build()
}

func (c *fileConfig) build() (*Options, error) {
	val, diags := c.IncludePaths.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrConfig, diags)
	}

	includePaths, err := includePathsFromCty(val)
	if err != nil {
		return nil, err
	}

	return New(c.OutputStyle, includePaths, c.ImagePath)
}

// includePathsFromCty maps an HCL value onto the inputs New accepts: a
// string stays a string, a list or tuple becomes []any so New can report
// the index of a non-string element.
func includePathsFromCty(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: include_paths must be a known value", ErrType)
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty.IsListType(), ty.IsTupleType():
		items := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.IsNull() || elem.Type() != cty.String {
				items = append(items, elem)
				continue
			}
			items = append(items, elem.AsString())
		}
		return items, nil
	default:
		return nil, fmt.Errorf(
			"%w: include_paths must be a string or a sequence of strings, got %s",
			ErrType, ty.FriendlyName())
	}
}
