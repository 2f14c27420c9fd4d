package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lampi/looper/internal/model"
)

func TestLampView_InitialState(t *testing.T) {
	test.NewTempApp(t)
	lamp := model.NewLamp()
	view := NewLampView(lamp, nil, zerolog.Nop())
	defer view.Close()

	assert.Equal(t, lamp.Color(), view.ColorSwatch().FillColor)
	assert.Equal(t, lamp.BaseHueColor(), view.BaseHueSwatch().FillColor)
	assert.InDelta(t, 1.0, view.hue.slider.Value, 1e-9)
	assert.False(t, view.powerCheck.Checked)
	assert.Equal(t, "Hue: 100%", view.hue.label.Text)
}

func TestLampView_FollowsLamp(t *testing.T) {
	test.NewTempApp(t)
	lamp := model.NewLamp()
	view := NewLampView(lamp, nil, zerolog.Nop())
	defer view.Close()

	lamp.SetHSB(0.5, 0, 1)

	assert.InDelta(t, 0.5, view.hue.slider.Value, 0.01)
	assert.InDelta(t, 0.0, view.saturation.slider.Value, 0.01)
	assert.Equal(t, lamp.Color(), view.ColorSwatch().FillColor)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 255, A: 255}, view.BaseHueSwatch().FillColor)
	assert.NotEqual(t, view.ColorSwatch().FillColor, view.BaseHueSwatch().FillColor)

	lamp.SetOn(true)
	assert.True(t, view.powerCheck.Checked)
}

func TestLampView_SlidersDriveLamp(t *testing.T) {
	test.NewTempApp(t)
	lamp := model.NewLamp()
	view := NewLampView(lamp, nil, zerolog.Nop())
	defer view.Close()

	view.brightness.slider.SetValue(0.5)
	assert.InDelta(t, 0.5, lamp.Brightness(), 0.01)
	assert.Equal(t, "Brightness: 50%", view.brightness.label.Text)
	assert.Equal(t, lamp.Color(), view.ColorSwatch().FillColor)

	view.powerCheck.SetChecked(true)
	assert.True(t, lamp.IsOn())
}

func TestLampView_Close(t *testing.T) {
	test.NewTempApp(t)
	lamp := model.NewLamp()
	view := NewLampView(lamp, nil, zerolog.Nop())

	view.Close()
	view.Close()

	before := view.ColorSwatch().FillColor
	lamp.SetHue(0.5)
	assert.Equal(t, before, view.ColorSwatch().FillColor)
}
