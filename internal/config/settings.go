// Package config holds the trainer settings and their on-disk YAML form.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SeamusWaldron/cubetrainer"
)

var (
	ErrUnknownField = errors.New("config: unknown settings field")
	ErrNotCyclable  = errors.New("config: field has no fixed set of values")
	ErrInvalidValue = errors.New("config: invalid settings value")
)

// PlaylistMode selects the next case after a solve.
type PlaylistMode string

const (
	PlaylistOrdered PlaylistMode = "ordered"
	PlaylistShuffle PlaylistMode = "shuffle"
	PlaylistRandom  PlaylistMode = "random"
)

// PlaylistModes lists the modes in cycling order.
var PlaylistModes = []PlaylistMode{PlaylistOrdered, PlaylistShuffle, PlaylistRandom}

// LoopMode decides what happens after the last case of an ordered pass.
type LoopMode string

const (
	LoopNone LoopMode = "no loop"
	LoopAll  LoopMode = "loop"
	LoopOne  LoopMode = "loop1"
)

// LoopModes lists the modes in cycling order.
var LoopModes = []LoopMode{LoopNone, LoopAll, LoopOne}

// Settings are the user-visible trainer options.
type Settings struct {
	RandomAUF              bool         `yaml:"randomAUF"`
	RandomYs               bool         `yaml:"randomYs"`
	PlaylistMode           PlaylistMode `yaml:"playlistMode" validate:"oneof=ordered shuffle random"`
	LoopMode               LoopMode     `yaml:"loopMode" validate:"oneof='no loop' loop loop1"`
	MirrorAcrossM          bool         `yaml:"mirrorAcrossM"`
	MirrorAcrossS          bool         `yaml:"mirrorAcrossS"`
	RandomizeMirrorAcrossM bool         `yaml:"randomizeMirrorAcrossM"`
	RandomizeMirrorAcrossS bool         `yaml:"randomizeMirrorAcrossS"`
	ShowHintFacelets       bool         `yaml:"showHintFacelets"`
	UseMaskings            bool         `yaml:"useMaskings"`
	FullColourNeutrality   bool         `yaml:"fullColourNeutrality"`
	FirstRotation          string       `yaml:"firstRotation" validate:"omitempty,rotation"`
	RandomRotations1       string       `yaml:"randomRotations1" validate:"omitempty,rotation"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		PlaylistMode: PlaylistOrdered,
		LoopMode:     LoopAll,
	}
}

var validate = mustValidator()

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("rotation", func(fl validator.FieldLevel) bool {
		_, ok, err := cubetrainer.ParseRotation(fl.Field().String())
		return ok && err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register rotation validation: %w", err)
	}
	return v, nil
}

func mustValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks enumerated fields and rotation tokens.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// Field names a setting by its YAML key.
type Field string

const (
	FieldRandomAUF              Field = "randomAUF"
	FieldRandomYs               Field = "randomYs"
	FieldPlaylistMode           Field = "playlistMode"
	FieldLoopMode               Field = "loopMode"
	FieldMirrorAcrossM          Field = "mirrorAcrossM"
	FieldMirrorAcrossS          Field = "mirrorAcrossS"
	FieldRandomizeMirrorAcrossM Field = "randomizeMirrorAcrossM"
	FieldRandomizeMirrorAcrossS Field = "randomizeMirrorAcrossS"
	FieldShowHintFacelets       Field = "showHintFacelets"
	FieldUseMaskings            Field = "useMaskings"
	FieldFullColourNeutrality   Field = "fullColourNeutrality"
	FieldFirstRotation          Field = "firstRotation"
	FieldRandomRotations1       Field = "randomRotations1"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldRandomAUF, FieldRandomYs, FieldPlaylistMode, FieldLoopMode,
	FieldMirrorAcrossM, FieldMirrorAcrossS, FieldRandomizeMirrorAcrossM, FieldRandomizeMirrorAcrossS,
	FieldShowHintFacelets, FieldUseMaskings, FieldFullColourNeutrality,
	FieldFirstRotation, FieldRandomRotations1,
}

// ParseField resolves a field name, ignoring case.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (s *Settings) bools() map[Field]*bool {
	return map[Field]*bool{
		FieldRandomAUF:              &s.RandomAUF,
		FieldRandomYs:               &s.RandomYs,
		FieldMirrorAcrossM:          &s.MirrorAcrossM,
		FieldMirrorAcrossS:          &s.MirrorAcrossS,
		FieldRandomizeMirrorAcrossM: &s.RandomizeMirrorAcrossM,
		FieldRandomizeMirrorAcrossS: &s.RandomizeMirrorAcrossS,
		FieldShowHintFacelets:       &s.ShowHintFacelets,
		FieldUseMaskings:            &s.UseMaskings,
		FieldFullColourNeutrality:   &s.FullColourNeutrality,
	}
}

// Get returns the value of a field formatted as it would be typed.
func (s Settings) Get(f Field) (string, error) {
	if b, ok := s.bools()[f]; ok {
		return strconv.FormatBool(*b), nil
	}
	switch f {
	case FieldPlaylistMode:
		return string(s.PlaylistMode), nil
	case FieldLoopMode:
		return string(s.LoopMode), nil
	case FieldFirstRotation:
		return s.FirstRotation, nil
	case FieldRandomRotations1:
		return s.RandomRotations1, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Set returns a copy of s with one field replaced and validated.
func (s Settings) Set(f Field, value string) (Settings, error) {
	out := s
	if b, ok := out.bools()[f]; ok {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%q", ErrInvalidValue, f, value)
		}
		*b = v
		return out, nil
	}
	switch f {
	case FieldPlaylistMode:
		out.PlaylistMode = PlaylistMode(value)
	case FieldLoopMode:
		out.LoopMode = LoopMode(value)
	case FieldFirstRotation:
		out.FirstRotation = value
	case FieldRandomRotations1:
		out.RandomRotations1 = value
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if err := out.Validate(); err != nil {
		return s, err
	}
	return out, nil
}

// Cycle advances playlistMode or loopMode to its next value, wrapping.
func (s Settings) Cycle(f Field) (Settings, error) {
	out := s
	switch f {
	case FieldPlaylistMode:
		out.PlaylistMode = next(PlaylistModes, s.PlaylistMode)
	case FieldLoopMode:
		out.LoopMode = next(LoopModes, s.LoopMode)
	default:
		return s, fmt.Errorf("%w: %s", ErrNotCyclable, f)
	}
	return out, nil
}

func next[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// Diff lists the fields that differ between a and b.
func Diff(a, b Settings) []Field {
	var changed []Field
	for _, f := range Fields {
		av, _ := a.Get(f)
		bv, _ := b.Get(f)
		if av != bv {
			changed = append(changed, f)
		}
	}
	return changed
}
