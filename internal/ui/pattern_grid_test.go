package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lampi/looper/internal/model"
)

func newTestGrid(t *testing.T) (*PatternGrid, *model.LoopList, string) {
	t.Helper()
	test.NewTempApp(t)
	list := model.SeedLoops()
	loop, ok := list.At(0)
	require.True(t, ok)
	return NewPatternGrid(list, loop.ID, nil, zerolog.Nop()), list, loop.ID
}

func storedLoop(t *testing.T, list *model.LoopList, id string) model.Loop {
	t.Helper()
	loop, ok := list.At(list.IndexOf(id))
	require.True(t, ok)
	return loop
}

func TestPatternGrid_Layout(t *testing.T) {
	grid, _, _ := newTestGrid(t)

	assert.Len(t, grid.cells, model.StepsPerPattern)
	for _, cell := range grid.cells {
		assert.Equal(t, model.SoundNone.Color(), cell.background.FillColor)
	}
	assert.Equal(t, "BPM: 100", grid.bpmLabel.Text)
	assert.False(t, grid.swingCheck.Checked)
}

func TestPatternGrid_TapCyclesStep(t *testing.T) {
	grid, list, id := newTestGrid(t)

	want := []model.Sound{model.SoundHiHat, model.SoundSnare, model.SoundTom, model.SoundNone}
	for _, sound := range want {
		test.Tap(grid.cells[5].button)

		got, err := storedLoop(t, list, id).Pattern.At(5)
		require.NoError(t, err)
		assert.Equal(t, sound, got)
		assert.Equal(t, sound.Color(), grid.cells[5].background.FillColor)
	}

	assert.True(t, storedLoop(t, list, id).Pattern.IsEmpty())
}

func TestPatternGrid_Clear(t *testing.T) {
	grid, list, id := newTestGrid(t)
	grid.CycleStep(0)
	grid.CycleStep(15)
	require.False(t, storedLoop(t, list, id).Pattern.IsEmpty())

	test.Tap(grid.clearBtn)

	assert.True(t, storedLoop(t, list, id).Pattern.IsEmpty())
	assert.Equal(t, model.SoundNone.Color(), grid.cells[15].background.FillColor)
}

func TestPatternGrid_InvalidStepIgnored(t *testing.T) {
	grid, list, id := newTestGrid(t)

	grid.CycleStep(model.StepsPerPattern)
	grid.CycleStep(-1)

	assert.True(t, storedLoop(t, list, id).Pattern.IsEmpty())
}

func TestPatternGrid_Tempo(t *testing.T) {
	grid, list, id := newTestGrid(t)

	grid.SetBPM(250)
	assert.Equal(t, model.MaxBPM, storedLoop(t, list, id).Tempo.BPM)
	assert.Equal(t, "BPM: 200", grid.bpmLabel.Text)

	grid.SetBPM(120)
	assert.Equal(t, 120, storedLoop(t, list, id).Tempo.BPM)
	assert.InDelta(t, 120, grid.bpmSlider.Value, 1e-9)

	grid.swingCheck.SetChecked(true)
	assert.True(t, storedLoop(t, list, id).Tempo.Swing)
	assert.True(t, grid.Tempo().Swing)
}

func TestPatternGrid_DeletedLoop(t *testing.T) {
	grid, list, id := newTestGrid(t)
	require.NoError(t, list.RemoveLoop(id))

	grid.CycleStep(0)
	assert.Equal(t, 2, list.Len())

	s, err := grid.Pattern().At(0)
	require.NoError(t, err)
	assert.Equal(t, model.SoundHiHat, s)
}
