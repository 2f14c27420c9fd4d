package ui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/lampi/looper/internal/model"
)

// lampSlider is a 0..1 slider with a percentage caption
type lampSlider struct {
	key    string
	label  *widget.Label
	slider *widget.Slider
}

// LampView is the colour panel of the lamp: three sliders, a power check and
// two swatches. It mirrors the lamp through a subscription.
type LampView struct {
	lamp         *model.Lamp
	localization *Localization
	logger       zerolog.Logger
	cancel       func()

	// set while widgets are being synced from a snapshot
	syncing bool

	hue        *lampSlider
	saturation *lampSlider
	brightness *lampSlider
	powerCheck *widget.Check
	colorRect  *canvas.Rectangle
	baseRect   *canvas.Rectangle
	content    fyne.CanvasObject
}

// NewLampView creates the panel and subscribes it to lamp
func NewLampView(lamp *model.Lamp, localization *Localization, logger zerolog.Logger) *LampView {
	if localization == nil {
		localization = NewLocalization()
	}

	v := &LampView{
		lamp:         lamp,
		localization: localization,
		logger:       logger,
	}
	v.createUI()
	v.apply(lamp.State())

	v.cancel = lamp.Subscribe(func(state model.LampState) {
		fyne.Do(func() {
			v.apply(state)
		})
	})
	return v
}

// Content returns the root canvas object of the panel
func (v *LampView) Content() fyne.CanvasObject {
	return v.content
}

// Close stops following the lamp
func (v *LampView) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// ColorSwatch returns the rectangle showing the lamp colour
func (v *LampView) ColorSwatch() *canvas.Rectangle {
	return v.colorRect
}

// BaseHueSwatch returns the rectangle showing the pure hue
func (v *LampView) BaseHueSwatch() *canvas.Rectangle {
	return v.baseRect
}

// RefreshTexts re-reads every localized label
func (v *LampView) RefreshTexts() {
	v.powerCheck.Text = v.localization.GetText(KeyPower)
	v.powerCheck.Refresh()
	for _, s := range []*lampSlider{v.hue, v.saturation, v.brightness} {
		v.updateSliderLabel(s)
	}
}

// createUI creates the UI components
func (v *LampView) createUI() {
	v.colorRect = canvas.NewRectangle(v.lamp.Color())
	v.colorRect.SetMinSize(fyne.NewSize(ColorSwatchSize, ColorSwatchSize))
	v.colorRect.CornerRadius = ColorSwatchSize / 8

	v.baseRect = canvas.NewRectangle(v.lamp.BaseHueColor())
	v.baseRect.SetMinSize(fyne.NewSize(BaseHueSwatchSize, BaseHueSwatchSize))
	v.baseRect.CornerRadius = BaseHueSwatchSize / 2

	v.hue = v.newSlider(KeyHue, v.lamp.SetHue)
	v.saturation = v.newSlider(KeySaturation, v.lamp.SetSaturation)
	v.brightness = v.newSlider(KeyBrightness, v.lamp.SetBrightness)

	v.powerCheck = widget.NewCheck(v.localization.GetText(KeyPower), func(on bool) {
		if v.syncing {
			return
		}
		v.logger.Debug().Bool("on", on).Msg("lamp power changed")
		v.lamp.SetOn(on)
	})

	swatches := container.NewHBox(
		container.NewCenter(v.colorRect),
		container.NewCenter(v.baseRect),
	)

	sliders := container.NewVBox()
	for _, s := range []*lampSlider{v.hue, v.saturation, v.brightness} {
		sliders.Add(s.label)
		sliders.Add(s.slider)
	}

	// Side by side on wide screens, stacked on phones in portrait
	v.content = NewMobileUI().CreateAdaptiveContainer(2,
		container.NewCenter(swatches),
		container.NewVBox(sliders, widget.NewSeparator(), v.powerCheck),
	)
}

func (v *LampView) newSlider(key string, set func(float64)) *lampSlider {
	s := &lampSlider{
		key:    key,
		label:  widget.NewLabel(""),
		slider: widget.NewSlider(0, 1),
	}
	s.slider.Step = SliderStep
	s.slider.OnChanged = func(value float64) {
		if v.syncing {
			return
		}
		v.logger.Debug().Str("slider", key).Float64("value", value).Msg("lamp slider moved")
		set(value)
	}
	return s
}

// apply copies a snapshot into the widgets
func (v *LampView) apply(state model.LampState) {
	v.syncing = true
	defer func() { v.syncing = false }()

	v.setSlider(v.hue, state.Hue)
	v.setSlider(v.saturation, state.Saturation)
	v.setSlider(v.brightness, state.Brightness)
	v.powerCheck.SetChecked(state.IsOn)

	v.colorRect.FillColor = state.Color()
	v.colorRect.Refresh()
	v.baseRect.FillColor = state.BaseHueColor()
	v.baseRect.Refresh()
}

func (v *LampView) setSlider(s *lampSlider, value float64) {
	if s.slider.Value != value {
		s.slider.SetValue(value)
	}
	v.updateSliderLabel(s)
}

func (v *LampView) updateSliderLabel(s *lampSlider) {
	percent := int(math.Round(s.slider.Value * 100))
	s.label.SetText(fmt.Sprintf(PercentLabelFormat, v.localization.GetText(s.key), percent))
}
