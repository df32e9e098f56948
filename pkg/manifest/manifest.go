// Package manifest loads cop catalogs: YAML documents mapping qualified cop
// names to their description and default posture. Document order is
// significant because it becomes registry order, so parsing walks yaml
// nodes instead of decoding into a map.
package manifest

import (
	_ "embed"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/errors"
)

//go:embed embedded/cops.yml
var defaultManifest []byte

// entry is the YAML shape of a single cop declaration.
type entry struct {
	Description string      `yaml:"description"`
	Enabled     interface{} `yaml:"enabled"`
	Safe        *bool       `yaml:"safe"`
}

// Default returns the built-in cop catalog in declaration order.
func Default() ([]cop.Cop, error) {
	return Parse(defaultManifest, "<builtin>")
}

// Load reads a manifest from r. source names the origin for error messages,
// typically a file path.
func Load(r io.Reader, source string) ([]cop.Cop, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "reading cop manifest %s", source)
	}
	return Parse(data, source)
}

// Parse decodes manifest bytes into an ordered list of cop descriptors.
// Every key must be a qualified "Department/Name"; an unspecified enabled
// value means enabled and an unspecified safe value means safe.
func Parse(data []byte, source string) ([]cop.Cop, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "parsing cop manifest %s", source)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrManifestParse,
			"cop manifest %s must be a mapping of cop names", source)
	}

	cops := make([]cop.Cop, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		badge := cop.ParseBadge(keyNode.Value)
		if !badge.Qualified() {
			return nil, errors.Newf(errors.ErrManifestParse,
				"cop %q in %s must be qualified as Department/Name", keyNode.Value, source)
		}

		var e entry
		if valNode.Tag != "!!null" {
			if err := valNode.Decode(&e); err != nil {
				return nil, errors.Wrapf(err, errors.ErrManifestParse,
					"cop %s in %s", keyNode.Value, source)
			}
		}

		status, err := cop.ParseStatus(e.Enabled)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse,
				"cop %s in %s", keyNode.Value, source)
		}

		safe := true
		if e.Safe != nil {
			safe = *e.Safe
		}

		cops = append(cops, cop.Cop{
			Badge:       badge,
			Description: e.Description,
			Enabled:     status,
			Safe:        safe,
		})
	}
	return cops, nil
}
