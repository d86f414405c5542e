// Package algset imports alg sets from comma-separated text and ships the
// built-in presets.
package algset

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubetrainer"
)

// MaxNameLength bounds alg set names.
const MaxNameLength = 30

var (
	ErrInvalidName   = errors.New("algset: invalid set name")
	ErrEmptyList     = errors.New("algset: algorithm list is required")
	ErrInvalidLine   = errors.New("algset: invalid line")
	ErrUnknownPreset = errors.New("algset: unknown preset")
)

type header struct {
	Name string `validate:"required,max=30"`
}

var validate = validator.New()

// ValidateName checks a set name after trimming surrounding space.
func ValidateName(name string) (string, error) {
	h := header{Name: strings.TrimSpace(name)}
	if err := validate.Struct(h); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
			return "", fmt.Errorf("%w: must be at most %d characters", ErrInvalidName, MaxNameLength)
		}
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	return h.Name, nil
}

// Parse reads one entry per line: name, moves and an optional solved state.
// Parentheses are dropped; a missing solved state means FULL.
//
//	set, err := algset.Parse("PLL", "T, R U R' U' R' F R2 U' R' U' R U R' F'")
func Parse(name, text string) (cubetrainer.AlgSet, error) {
	name, err := ValidateName(name)
	if err != nil {
		return cubetrainer.AlgSet{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return cubetrainer.AlgSet{}, ErrEmptyList
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	set := cubetrainer.AlgSet{Name: name}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return cubetrainer.AlgSet{}, fmt.Errorf("%w: %v", ErrInvalidLine, err)
		}
		line, _ := r.FieldPos(0)
		entry, err := parseRecord(record)
		if err != nil {
			return cubetrainer.AlgSet{}, fmt.Errorf("line %d: %w", line, err)
		}
		set.Entries = append(set.Entries, entry)
	}
	return set, nil
}

func clean(field string) string {
	return strings.TrimSpace(strings.NewReplacer("(", "", ")", "").Replace(field))
}

func parseRecord(record []string) (cubetrainer.Entry, error) {
	if len(record) < 2 {
		return cubetrainer.Entry{}, fmt.Errorf("%w: %q needs a name and an algorithm", ErrInvalidLine, strings.Join(record, ","))
	}
	for i := range record {
		record[i] = clean(record[i])
	}
	alg, err := cubetrainer.ParseAlg(record[1])
	if err != nil {
		return cubetrainer.Entry{}, err
	}
	if len(alg) == 0 {
		return cubetrainer.Entry{}, fmt.Errorf("%w: %q has no moves", ErrInvalidLine, record[0])
	}
	var solved string
	if len(record) > 2 {
		solved = record[2]
	}
	target, err := cubetrainer.ParseSolvedState(solved)
	if err != nil {
		return cubetrainer.Entry{}, err
	}
	return cubetrainer.Entry{Name: record[0], Alg: alg, Solved: target}, nil
}

// Format writes set back in the form Parse accepts.
func Format(set cubetrainer.AlgSet) string {
	var b strings.Builder
	for _, e := range set.Entries {
		fmt.Fprintf(&b, "%s, %s, %s\n", e.Name, e.Alg, e.Target())
	}
	return b.String()
}

//go:embed presets.yaml
var presetFS embed.FS

// Preset is a built-in alg list.
type Preset struct {
	Name string `yaml:"name"`
	Algs string `yaml:"algs"`
}

// Presets returns the built-in lists in display order.
func Presets() ([]Preset, error) {
	data, err := presetFS.ReadFile("presets.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return doc.Presets, nil
}

// LoadPreset parses the named preset into an alg set of the same name.
func LoadPreset(name string) (cubetrainer.AlgSet, error) {
	presets, err := Presets()
	if err != nil {
		return cubetrainer.AlgSet{}, err
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return Parse(p.Name, p.Algs)
		}
	}
	return cubetrainer.AlgSet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
