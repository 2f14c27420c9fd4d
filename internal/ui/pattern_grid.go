package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/lampi/looper/internal/model"
)

// stepCell is one square of the beat grid
type stepCell struct {
	background *canvas.Rectangle
	button     *widget.Button
	object     fyne.CanvasObject
}

// PatternGrid edits the beat pattern and tempo of one loop. Edits are
// written straight back to the list.
type PatternGrid struct {
	list         *model.LoopList
	loopID       string
	localization *Localization
	logger       zerolog.Logger

	pattern model.Pattern
	tempo   model.Tempo

	cells      []stepCell
	bpmLabel   *widget.Label
	bpmSlider  *widget.Slider
	swingCheck *widget.Check
	clearBtn   *widget.Button
	content    fyne.CanvasObject
}

// NewPatternGrid creates an editor for the loop with loopID
func NewPatternGrid(list *model.LoopList, loopID string, localization *Localization, logger zerolog.Logger) *PatternGrid {
	if localization == nil {
		localization = NewLocalization()
	}

	g := &PatternGrid{
		list:         list,
		loopID:       loopID,
		localization: localization,
		logger:       logger.With().Str("loop_id", loopID).Logger(),
		tempo:        model.DefaultTempo(),
	}

	if loop, ok := list.At(list.IndexOf(loopID)); ok {
		g.pattern = loop.Pattern
		g.tempo = loop.Tempo
	} else {
		g.logger.Warn().Msg("pattern editor opened for unknown loop")
	}

	g.createUI()
	g.refreshCells()
	return g
}

// Content returns the root canvas object of the editor
func (g *PatternGrid) Content() fyne.CanvasObject {
	return g.content
}

// Pattern returns the pattern as currently shown
func (g *PatternGrid) Pattern() model.Pattern {
	return g.pattern
}

// Tempo returns the tempo as currently shown
func (g *PatternGrid) Tempo() model.Tempo {
	return g.tempo
}

// CycleStep advances the sound at step and stores the pattern
func (g *PatternGrid) CycleStep(step int) {
	sound, err := g.pattern.Cycle(step)
	if err != nil {
		g.logger.Warn().Err(err).Int("step", step).Msg("cannot cycle step")
		return
	}
	g.logger.Debug().Int("step", step).Stringer("sound", sound).Msg("step cycled")
	g.storePattern()
	g.refreshCell(step)
}

// Clear silences every step and stores the pattern
func (g *PatternGrid) Clear() {
	g.pattern.Clear()
	g.storePattern()
	g.refreshCells()
}

// SetBPM changes the tempo and stores it
func (g *PatternGrid) SetBPM(bpm int) {
	g.tempo.SetBPM(bpm)
	g.storeTempo()
	g.refreshTempo()
}

// SetSwing turns swing on or off and stores it
func (g *PatternGrid) SetSwing(on bool) {
	g.tempo.Swing = on
	g.storeTempo()
	g.refreshTempo()
}

func (g *PatternGrid) storePattern() {
	if err := g.list.UpdatePattern(g.loopID, g.pattern); err != nil {
		g.logger.Warn().Err(err).Msg("pattern not stored")
	}
}

func (g *PatternGrid) storeTempo() {
	if err := g.list.UpdateTempo(g.loopID, g.tempo); err != nil {
		g.logger.Warn().Err(err).Msg("tempo not stored")
	}
}

// createUI creates the UI components
func (g *PatternGrid) createUI() {
	cells := make([]fyne.CanvasObject, 0, model.StepsPerPattern)
	g.cells = make([]stepCell, model.StepsPerPattern)
	for i := range g.cells {
		step := i
		bg := canvas.NewRectangle(model.SoundNone.Color())
		bg.CornerRadius = theme.InputRadiusSize()
		bg.SetMinSize(fyne.NewSize(StepButtonSize, StepButtonSize))

		btn := widget.NewButton("", func() { g.CycleStep(step) })
		btn.Importance = widget.LowImportance

		g.cells[i] = stepCell{background: bg, button: btn, object: container.NewStack(bg, btn)}
		cells = append(cells, g.cells[i].object)
	}
	grid := container.NewGridWithColumns(model.BeatsPerMeasure, cells...)

	g.bpmLabel = widget.NewLabel("")
	g.bpmSlider = widget.NewSlider(0, model.MaxBPM)
	g.bpmSlider.Step = 1
	g.bpmSlider.OnChanged = func(value float64) {
		g.bpmLabel.SetText(fmt.Sprintf(BPMLabelFormat, g.localization.GetText(KeyBPM), int(value)))
	}
	g.bpmSlider.OnChangeEnded = func(value float64) {
		g.SetBPM(int(value))
	}

	g.swingCheck = widget.NewCheck(g.localization.GetText(KeySwing), nil)

	g.clearBtn = widget.NewButtonWithIcon(g.localization.GetText(KeyClear), theme.ContentClearIcon(), g.Clear)

	g.refreshTempo()
	g.swingCheck.OnChanged = g.SetSwing

	controls := container.NewVBox(
		container.NewBorder(nil, nil, g.bpmLabel, nil, g.bpmSlider),
		container.NewHBox(g.swingCheck, g.clearBtn),
	)

	g.content = container.NewBorder(nil, controls, nil, nil, container.NewPadded(grid))
}

func (g *PatternGrid) refreshCells() {
	for i := range g.cells {
		g.refreshCell(i)
	}
}

func (g *PatternGrid) refreshCell(step int) {
	sound, err := g.pattern.At(step)
	if err != nil {
		return
	}
	cell := g.cells[step]
	cell.background.FillColor = sound.Color()
	cell.background.Refresh()
	if sound == model.SoundNone {
		cell.button.SetText("")
	} else {
		cell.button.SetText(sound.String())
	}
}

// refreshTempo syncs the tempo widgets without firing their handlers
func (g *PatternGrid) refreshTempo() {
	g.bpmLabel.SetText(fmt.Sprintf(BPMLabelFormat, g.localization.GetText(KeyBPM), g.tempo.BPM))
	if int(g.bpmSlider.Value) != g.tempo.BPM {
		g.bpmSlider.Value = float64(g.tempo.BPM)
		g.bpmSlider.Refresh()
	}
	if g.swingCheck.Checked != g.tempo.Swing {
		g.swingCheck.Checked = g.tempo.Swing
		g.swingCheck.Refresh()
	}
}
