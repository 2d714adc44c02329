package anim

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantColor(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	ci := ConstantColor(c)
	assert.True(t, ci.IsConstant())
	assert.Equal(t, color.Color(c), ci.At(0))
	assert.Equal(t, color.Color(c), ci.At(99))
}

func TestHSVAConstant(t *testing.T) {
	ci, err := HSVA(0, 1, 1, 1)
	require.NoError(t, err)
	got := ci.At(0).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, got)
}

func TestHSVAAnimatedHue(t *testing.T) {
	hue, err := Linear(0, 1, 0, 120)
	require.NoError(t, err)
	ci, err := HSVA(hue, 1, 1, 1)
	require.NoError(t, err)

	red := ci.At(0).(color.NRGBA)
	green := ci.At(1).(color.NRGBA)
	assert.Equal(t, uint8(255), red.R)
	assert.Equal(t, uint8(0), red.G)
	assert.Equal(t, uint8(0), green.R)
	assert.Equal(t, uint8(255), green.G)
}

func TestHSVAAlpha(t *testing.T) {
	a, err := Linear(0, 1, 0, 1)
	require.NoError(t, err)
	ci, err := HSVA(200, 0.5, 0.5, a)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), ci.At(0).(color.NRGBA).A)
	assert.Equal(t, uint8(255), ci.At(1).(color.NRGBA).A)
}

func TestHSVABadArgument(t *testing.T) {
	_, err := HSVA("red", 1, 1, 1)
	var cfg *ConfigError
	assert.ErrorAs(t, err, &cfg)
}

func TestGradientColor(t *testing.T) {
	table := GradientTable{
		{Hue: 0, Pos: 0},
		{Hue: 180, Pos: 1},
	}
	pos, err := Linear(0, 10, 0, 1)
	require.NoError(t, err)
	ci, err := GradientColor(table, 1, 0.5, pos)
	require.NoError(t, err)

	// Same time, same color; distinct times, distinct colors.
	assert.Equal(t, ci.At(2), ci.At(2))
	assert.NotEqual(t, ci.At(0), ci.At(10))
}

func TestGradientColorValidation(t *testing.T) {
	_, err := GradientColor(GradientTable{}, 1, 0.5, 0)
	assert.Error(t, err)
	_, err = GradientColor(GradientTable{{Hue: 0, Pos: 0}}, 1, 0.5, "mid")
	assert.Error(t, err)
}
