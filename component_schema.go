package lumen

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gekko3d/lumen/scene"
	"gopkg.in/yaml.v3"
)

type PropertyType string

const (
	PropertyBoolean PropertyType = "boolean"
	PropertyRGB     PropertyType = "rgb"
	PropertyNumber  PropertyType = "number"
	PropertyModel   PropertyType = "model"
)

// NumberOptions are editor hints. They are not enforced when a value is set.
type NumberOptions struct {
	Min  float32 `yaml:"min"`
	Max  float32 `yaml:"max"`
	Step float32 `yaml:"step"`
}

// Property describes one field of a component's data.
type Property struct {
	Name        string
	DisplayName string
	Description string
	Type        PropertyType
	Default     any
	Options     *NumberOptions
	Exposed     bool // visible to the editor and serialized
}

// Schema is the ordered list of properties a component system manages.
type Schema []Property

func (s Schema) Names() []string {
	res := make([]string, 0, len(s))
	for _, p := range s {
		res = append(res, p.Name)
	}
	return res
}

func (s Schema) Lookup(name string) (Property, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func (s Schema) Exposed() Schema {
	var res Schema
	for _, p := range s {
		if p.Exposed {
			res = append(res, p)
		}
	}
	return res
}

type schemaDocument struct {
	System     string             `yaml:"system"`
	Properties []propertyDocument `yaml:"properties"`
}

type propertyDocument struct {
	Name         string         `yaml:"name"`
	DisplayName  string         `yaml:"displayName,omitempty"`
	Description  string         `yaml:"description,omitempty"`
	Type         PropertyType   `yaml:"type"`
	DefaultValue any            `yaml:"defaultValue"`
	Options      *NumberOptions `yaml:"options,omitempty"`
}

// ExportSchema renders the exposed part of a schema as the YAML document editors consume.
func ExportSchema(systemId string, schema Schema) ([]byte, error) {
	doc := schemaDocument{System: systemId}
	for _, p := range schema.Exposed() {
		def := p.Default
		if p.Type == PropertyRGB {
			rgb, err := toRGB(def)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", p.Name, err)
			}
			def = FormatRGB(rgb)
		}
		doc.Properties = append(doc.Properties, propertyDocument{
			Name:         p.Name,
			DisplayName:  p.DisplayName,
			Description:  p.Description,
			Type:         p.Type,
			DefaultValue: def,
			Options:      p.Options,
		})
	}
	return yaml.Marshal(doc)
}

// normalizeProperty converts value to the canonical Go type for the property:
// bool, float32, [3]float32 or *scene.Model.
func normalizeProperty(p Property, value any) (any, error) {
	switch p.Type {
	case PropertyBoolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case PropertyNumber:
		if f, ok := toFloat32(value); ok {
			return f, nil
		}
	case PropertyRGB:
		rgb, err := toRGB(value)
		if err == nil {
			return rgb, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPropertyType, p.Name, err)
	case PropertyModel:
		switch m := value.(type) {
		case nil:
			return (*scene.Model)(nil), nil
		case *scene.Model:
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s expects %s, got %T", ErrPropertyType, p.Name, p.Type, value)
}

func toFloat32(value any) (float32, bool) {
	switch v := value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	case uint:
		return float32(v), true
	case uint32:
		return float32(v), true
	case uint64:
		return float32(v), true
	}
	return 0, false
}

func toRGB(value any) ([3]float32, error) {
	switch v := value.(type) {
	case [3]float32:
		return v, nil
	case [3]float64:
		return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}, nil
	case []float32:
		if len(v) == 3 {
			return [3]float32{v[0], v[1], v[2]}, nil
		}
	case []any:
		if len(v) == 3 {
			var res [3]float32
			for i, c := range v {
				f, ok := toFloat32(c)
				if !ok {
					return res, fmt.Errorf("color component %d is %T", i, c)
				}
				res[i] = f
			}
			return res, nil
		}
	case string:
		return ParseRGB(v)
	case color.Color:
		c := scene.ColorToVec4(v)
		return [3]float32{c[0], c[1], c[2]}, nil
	}
	return [3]float32{}, fmt.Errorf("cannot use %T (%v) as rgb", value, value)
}

// ParseRGB parses "0xRRGGBB", "#RRGGBB" or "RRGGBB" into normalized components.
func ParseRGB(s string) ([3]float32, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return [3]float32{}, fmt.Errorf("invalid rgb %q: expected 6 hex digits", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]float32{}, fmt.Errorf("invalid rgb %q: %w", s, err)
	}
	return [3]float32{
		float32((n>>16)&0xff) / 255,
		float32((n>>8)&0xff) / 255,
		float32(n&0xff) / 255,
	}, nil
}

func FormatRGB(c [3]float32) string {
	var b [3]uint8
	for i, v := range c {
		b[i] = uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
	}
	return fmt.Sprintf("0x%02x%02x%02x", b[0], b[1], b[2])
}
