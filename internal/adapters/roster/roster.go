// Package roster reads entrant rosters and writes champion lists.
//
// A roster is a YAML document (JSON works too):
//
//	title: Spring open
//	entrants:
//	  - name: mary
//	    rank: 1100
//	    category: 9
package roster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/okian/champions/internal/domain/model"
)

// Stdin is the path that makes Load read standard input.
const Stdin = "-"

// Package-level validator instance for roster validation.
var validate = validator.New()

// Roster is a decoded and validated entrant list.
type Roster struct {
	Title    string
	Entrants []model.Entrant
}

type document struct {
	Title    string   `yaml:"title,omitempty" validate:"max=200"`
	Entrants []record `yaml:"entrants" validate:"dive"`
}

// Rank and Category are pointers so that a missing key is caught by
// "required" while an explicit zero is still accepted. Length limits count
// characters, not bytes.
type record struct {
	Name     string `yaml:"name" validate:"max=256"`
	Rank     *uint  `yaml:"rank" validate:"required"`
	Category *uint  `yaml:"category" validate:"required"`
}

// Decode reads a roster document from r.
// An empty document yields an empty roster.
func Decode(r io.Reader) (Roster, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if err := validate.Struct(doc); err != nil {
		return Roster{}, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}

	out := Roster{Title: doc.Title, Entrants: make([]model.Entrant, len(doc.Entrants))}
	for i, rec := range doc.Entrants {
		out.Entrants[i] = model.New(rec.Name, *rec.Rank, *rec.Category)
	}
	return out, nil
}

// Load reads the roster at path, or from stdin when path is "-".
func Load(ctx context.Context, path string) (Roster, error) {
	if err := ctx.Err(); err != nil {
		return Roster{}, err
	}
	if path == Stdin {
		return Decode(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return Decode(bytes.NewReader(data))
}

// EncodeRoster writes r to w as a roster document that Decode accepts.
func EncodeRoster(w io.Writer, r Roster) error {
	doc := document{Title: r.Title, Entrants: make([]record, len(r.Entrants))}
	for i, e := range r.Entrants {
		rank, category := e.Rank, e.Category
		doc.Entrants[i] = record{Name: e.Name, Rank: &rank, Category: &category}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return enc.Close()
}
