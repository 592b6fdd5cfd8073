package theme

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPalette []byte

// CurrentColor inherits the color of the surrounding text.
const CurrentColor = "currentColor"

// ParseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa literals. The alpha
// channel is returned separately in 0..1 and is 1 for opaque forms.
func ParseHex(raw string) (colorful.Color, float64, bool) {
	if !strings.HasPrefix(raw, "#") || strings.ContainsFunc(raw, unicode.IsSpace) {
		return colorful.Color{}, 0, false
	}
	rgb, alpha := raw, ""
	switch len(raw) {
	case 4, 7:
	case 5:
		rgb, alpha = raw[:4], raw[4:]+raw[4:]
	case 9:
		rgb, alpha = raw[:7], raw[7:]
	default:
		return colorful.Color{}, 0, false
	}
	color, err := colorful.Hex(rgb)
	if err != nil {
		return colorful.Color{}, 0, false
	}
	a := 1.0
	if alpha != "" {
		v, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		a = float64(v) / 255
	}
	return color, a, true
}

// Palette holds named design tokens and per-context defaults.
type Palette struct {
	Colors   map[string]string          `yaml:"colors" validate:"required,dive,keys,required,endkeys,token_color"`
	Sizes    map[string]int             `yaml:"sizes" validate:"required,dive,keys,required,endkeys,gt=0"`
	Contexts map[Context]ContextDefault `yaml:"contexts" validate:"required,dive"`
}

// ContextDefault names the tokens a context falls back to when props do not
// specify them.
type ContextDefault struct {
	Color string `yaml:"color" validate:"required"`
	Size  string `yaml:"size" validate:"required"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("token_color", func(fl validator.FieldLevel) bool {
			_, _, ok := ParseHex(fl.Field().String())
			return ok
		}); err != nil {
			panic(fmt.Sprintf("theme: register token_color validation: %v", err))
		}
		validateInst = v
	})
	return validateInst
}

// Normalize lower cases token names and context defaults so lookups are
// case insensitive. Names that collide once lower cased are rejected.
func (p Palette) Normalize() (Palette, error) {
	out := Palette{Contexts: make(map[Context]ContextDefault, len(p.Contexts))}
	if p.Colors != nil {
		out.Colors = make(map[string]string, len(p.Colors))
		for name, value := range p.Colors {
			key := strings.ToLower(strings.TrimSpace(name))
			if _, ok := out.Colors[key]; ok {
				return Palette{}, fmt.Errorf("normalize palette: color token %q is defined more than once", key)
			}
			out.Colors[key] = value
		}
	}
	if p.Sizes != nil {
		out.Sizes = make(map[string]int, len(p.Sizes))
		for name, value := range p.Sizes {
			key := strings.ToLower(strings.TrimSpace(name))
			if _, ok := out.Sizes[key]; ok {
				return Palette{}, fmt.Errorf("normalize palette: size token %q is defined more than once", key)
			}
			out.Sizes[key] = value
		}
	}
	for ctx, defaults := range p.Contexts {
		color := strings.ToLower(strings.TrimSpace(defaults.Color))
		if strings.EqualFold(color, CurrentColor) {
			color = CurrentColor
		}
		out.Contexts[Context(strings.ToLower(string(ctx)))] = ContextDefault{
			Color: color,
			Size:  strings.ToLower(strings.TrimSpace(defaults.Size)),
		}
	}
	if p.Contexts == nil {
		out.Contexts = nil
	}
	return out, nil
}

// Validate checks token values and that every context default refers to a
// defined token. Token names are compared case insensitively.
func (p Palette) Validate() error {
	p, err := p.Normalize()
	if err != nil {
		return err
	}
	if err := validatorInstance().Struct(p); err != nil {
		return fmt.Errorf("validate palette: %w", err)
	}
	for name, defaults := range p.Contexts {
		if _, ok := p.Colors[defaults.Color]; !ok && defaults.Color != CurrentColor {
			return fmt.Errorf("validate palette: context %q uses unknown color token %q", name, defaults.Color)
		}
		if _, ok := p.Sizes[defaults.Size]; !ok {
			return fmt.Errorf("validate palette: context %q uses unknown size token %q", name, defaults.Size)
		}
	}
	return nil
}

// ParsePalette decodes and validates a YAML palette.
func ParsePalette(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("decode palette: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Palette{}, err
	}
	return p.Normalize()
}

// LoadPalette reads a YAML palette from path.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read palette: %w", err)
	}
	return ParsePalette(data)
}

// DefaultPalette returns the embedded palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(defaultPalette)
	if err != nil {
		panic(fmt.Sprintf("theme: embedded palette is invalid: %v", err))
	}
	return p
}
