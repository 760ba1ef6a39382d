package lumen

import (
	"image/color"
	"testing"

	"github.com/gekko3d/lumen/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRGB(t *testing.T) {
	cases := []struct {
		in   string
		want [3]float32
	}{
		{"0xffffff", [3]float32{1, 1, 1}},
		{"#000000", [3]float32{0, 0, 0}},
		{"FF0000", [3]float32{1, 0, 0}},
		{" 0X00ff00 ", [3]float32{0, 1, 0}},
	}
	for _, tc := range cases {
		got, err := ParseRGB(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "0xfff", "#gggggg", "0x1234567"} {
		_, err := ParseRGB(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatRGB(t *testing.T) {
	assert.Equal(t, "0xffffff", FormatRGB([3]float32{1, 1, 1}))
	assert.Equal(t, "0xff8000", FormatRGB([3]float32{1, 0.5, 0}))
	assert.Equal(t, "0x00ff00", FormatRGB([3]float32{-1, 2, 0}), "components are clamped")
}

func TestNormalizeProperty(t *testing.T) {
	rgb := Property{Name: "color", Type: PropertyRGB}
	for _, in := range []any{
		[3]float32{1, 0, 0},
		[3]float64{1, 0, 0},
		[]float32{1, 0, 0},
		[]any{1, 0, 0.0},
		"0xff0000",
		color.RGBA{R: 255, A: 255},
	} {
		got, err := normalizeProperty(rgb, in)
		require.NoError(t, err, "%T", in)
		assert.Equal(t, [3]float32{1, 0, 0}, got, "%T", in)
	}
	_, err := normalizeProperty(rgb, []float32{1, 0})
	assert.ErrorIs(t, err, ErrPropertyType)

	num := Property{Name: "intensity", Type: PropertyNumber}
	got, err := normalizeProperty(num, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(3), got)
	_, err = normalizeProperty(num, true)
	assert.ErrorIs(t, err, ErrPropertyType)

	model := Property{Name: "model", Type: PropertyModel}
	m := scene.NewModel()
	got, err = normalizeProperty(model, m)
	require.NoError(t, err)
	assert.Same(t, m, got)
	got, err = normalizeProperty(model, nil)
	require.NoError(t, err)
	assert.Nil(t, got.(*scene.Model))
	_, err = normalizeProperty(model, "model")
	assert.ErrorIs(t, err, ErrPropertyType)
}

func TestExportSchema(t *testing.T) {
	out, err := ExportSchema(DirectionalLightSystemId, directionalLightSchema())
	require.NoError(t, err)

	var doc struct {
		System     string `yaml:"system"`
		Properties []struct {
			Name         string         `yaml:"name"`
			Type         string         `yaml:"type"`
			DefaultValue any            `yaml:"defaultValue"`
			Options      *NumberOptions `yaml:"options"`
		} `yaml:"properties"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	assert.Equal(t, "directionallight", doc.System)
	require.Len(t, doc.Properties, 4, "model is not exposed")

	names := []string{}
	for _, p := range doc.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"enable", "color", "intensity", "castShadows"}, names)

	assert.Equal(t, true, doc.Properties[0].DefaultValue)
	assert.Equal(t, "0xffffff", doc.Properties[1].DefaultValue)
	require.NotNil(t, doc.Properties[2].Options)
	assert.InDelta(t, 0.05, doc.Properties[2].Options.Step, 1e-6)
	assert.Equal(t, float32(10), doc.Properties[2].Options.Max)
	assert.Equal(t, false, doc.Properties[3].DefaultValue)
}
