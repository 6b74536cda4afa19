// SPDX-License-Identifier: MIT

package circuit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/stateprep"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

// Document is the YAML form of a circuit.
type Document struct {
	Wires []any  `yaml:"wires"`
	Prep  Prep   `yaml:"prep,omitempty"`
	Ops   []Step `yaml:"ops,omitempty"`
}

// Prep selects at most one preparation.
type Prep struct {
	Basis      []int       `yaml:"basis,omitempty"`
	Amplitudes [][]float64 `yaml:"amplitudes,omitempty"` // [re, im] pairs
}

// Step is one gate application.
type Step struct {
	Gate     string `yaml:"gate"`
	Wires    []any  `yaml:"wires"`
	Subspace []int  `yaml:"subspace,omitempty"`
	Control  *int   `yaml:"control,omitempty"`
}

// Circuit is a built Document.
type Circuit struct {
	Wires wires.Wires
	Prep  stateprep.Preparation
	Ops   []ops.Operator
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("circuit: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
// Errors: ErrInvalidDocument.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, docErrorf("decode", errors.New("empty document"))
		}
		return nil, docErrorf("decode", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the document's structure. Gate semantics (wire counts,
// subspaces, control values) are checked by Build.
func (d *Document) Validate() error {
	if len(d.Wires) == 0 {
		return docErrorf("wires", errors.New("no wires"))
	}
	if d.Prep.Basis != nil && d.Prep.Amplitudes != nil {
		return docErrorf("prep", errors.New("basis and amplitudes are exclusive"))
	}
	for i, a := range d.Prep.Amplitudes {
		if len(a) != 2 {
			return docErrorf(fmt.Sprintf("prep.amplitudes[%d]", i), fmt.Errorf("want [re, im], got %d values", len(a)))
		}
	}
	for i, s := range d.Ops {
		if s.Gate == "" {
			return docErrorf(fmt.Sprintf("ops[%d]", i), errors.New("missing gate"))
		}
		if len(s.Wires) == 0 {
			return docErrorf(fmt.Sprintf("ops[%d]", i), errors.New("missing wires"))
		}
	}

	return nil
}

// Build validates d and constructs its descriptors and preparation.
// Errors: ErrInvalidDocument wrapping the underlying wires/ops/stateprep error.
func (d *Document) Build(opts ...stateprep.Option) (*Circuit, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	w, err := wires.New(d.Wires...)
	if err != nil {
		return nil, docErrorf("wires", err)
	}

	c := &Circuit{Wires: w, Ops: make([]ops.Operator, 0, len(d.Ops))}
	if c.Prep, err = d.Prep.build(w, opts); err != nil {
		return nil, docErrorf("prep", err)
	}
	for i, s := range d.Ops {
		op, err := s.build(w)
		if err != nil {
			return nil, docErrorf(fmt.Sprintf("ops[%d] %s", i, s.Gate), err)
		}
		c.Ops = append(c.Ops, op)
	}

	return c, nil
}

func (p Prep) build(w wires.Wires, opts []stateprep.Option) (stateprep.Preparation, error) {
	if p.Amplitudes == nil {
		trits := p.Basis
		if trits == nil {
			trits = make([]int, w.Len())
		}
		b, err := stateprep.NewBasisState(trits, w)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	data := make([]complex128, len(p.Amplitudes))
	for i, a := range p.Amplitudes {
		data[i] = complex(a[0], a[1])
	}
	t, err := tensor.New(data, len(data))
	if err != nil {
		return nil, err
	}

	sv, err := stateprep.NewStateVector(t, w, opts...)
	if err != nil {
		return nil, err
	}

	return sv, nil
}

func (s Step) build(w wires.Wires) (ops.Operator, error) {
	f, err := ops.ParseFamily(s.Gate)
	if err != nil {
		return ops.Operator{}, err
	}
	on, err := wires.New(s.Wires...)
	if err != nil {
		return ops.Operator{}, err
	}
	if err = on.RequireSubset(w); err != nil {
		return ops.Operator{}, err
	}
	var opts []ops.Option
	if s.Subspace != nil {
		opts = append(opts, ops.WithSubspace(s.Subspace))
	}
	if s.Control != nil {
		opts = append(opts, ops.WithControlValue(*s.Control))
	}

	return ops.New(f, on, opts...)
}
