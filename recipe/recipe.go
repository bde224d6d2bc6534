// Package recipe loads YAML selector recipes and runs them through the
// selector builder.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

type (
	// Step is a single append in a selector chain.
	Step struct {
		Kind  string `yaml:"kind"`
		Value string `yaml:"value"`
	}

	// Join combines two nested definitions with a combinator token.
	Join struct {
		Combinator string      `yaml:"combinator"`
		Left       *Definition `yaml:"left"`
		Right      *Definition `yaml:"right"`
	}

	// Definition describes one selector - either a chain of parts or a join
	// of two nested definitions. Exactly one of Parts and Join must be set.
	Definition struct {
		Name  string `yaml:"name,omitempty"`
		Parts []Step `yaml:"parts,omitempty"`
		Join  *Join  `yaml:"combine,omitempty"`
	}

	// Recipe is a parsed recipe file.
	Recipe struct {
		Selectors []Definition `yaml:"selectors"`
	}

	// Result pairs a definition name with its rendered selector.
	Result struct {
		Name string
		CSS  string
	}
)

// Load reads and decodes a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read recipe file: %w", err)
	}
	return Parse(data)
}

// Parse decodes recipe data. Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	r := &Recipe{}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe data: %w", err)
	}
	return r, nil
}

// Build runs every definition through the selector builder. Failed definitions
// are skipped; their errors, annotated with the definition name, are
// aggregated in the returned error next to the successful results.
func (r *Recipe) Build(log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		results []Result
		errs    error
	)
	for i, def := range r.Selectors {
		name := def.Name
		if len(name) == 0 {
			name = fmt.Sprintf("selector #%d", i+1)
		}
		sel, err := def.build()
		if err != nil {
			log.Warn("Skipping selector definition", zap.String("name", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		log.Debug("Selector built", zap.String("name", name), zap.Stringer("css", sel))
		results = append(results, Result{Name: name, CSS: sel.String()})
	}
	return results, errs
}

func (d *Definition) build() (selector.Selector, error) {
	switch {
	case d.Join != nil && len(d.Parts) > 0:
		return selector.Selector{}, errors.New("definition has both parts and combine")
	case d.Join != nil:
		return d.Join.build()
	case len(d.Parts) > 0:
		var s selector.Selector
		for _, st := range d.Parts {
			kind, err := selector.ParseKind(st.Kind)
			if err != nil {
				return selector.Selector{}, err
			}
			if s, err = s.Append(kind, st.Value); err != nil {
				return selector.Selector{}, err
			}
		}
		return s, nil
	default:
		return selector.Selector{}, errors.New("definition has neither parts nor combine")
	}
}

func (j *Join) build() (selector.Selector, error) {
	if j.Left == nil || j.Right == nil {
		return selector.Selector{}, errors.New("combine needs both left and right definitions")
	}
	left, err := j.Left.build()
	if err != nil {
		return selector.Selector{}, err
	}
	right, err := j.Right.build()
	if err != nil {
		return selector.Selector{}, err
	}
	return selector.Combine(left, j.Combinator, right)
}
