package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lampi/looper/internal/config"
	"github.com/lampi/looper/internal/model"
)

func touch(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestLoopRow_TogglePlay(t *testing.T) {
	test.NewTempApp(t)
	row := NewLoopRow(model.NewLoop("loop 1"), nil, RowOptions{})

	assert.False(t, row.IsPlaying())
	assert.Equal(t, IconPlay, row.PlayGlyph())

	row.TogglePlay()
	assert.True(t, row.IsPlaying())
	assert.Equal(t, IconPause, row.PlayGlyph())

	row.TogglePlay()
	assert.False(t, row.IsPlaying())
	assert.Equal(t, IconPlay, row.PlayGlyph())
}

func TestLoopRow_ToggleDoesNotTouchLoop(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop 1")
	row := NewLoopRow(loop, nil, RowOptions{})

	row.TogglePlay()
	assert.Equal(t, loop, row.Loop())
}

func TestLoopRow_Triggers(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name    string
		trigger config.RowTrigger
		tap     func(*LoopRow)
	}{
		{"icon", config.RowTriggerIcon, func(r *LoopRow) { test.Tap(r.playIcon) }},
		{"button", config.RowTriggerButton, func(r *LoopRow) { test.Tap(r.playBtn) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewLoopRow(model.NewLoop("loop"), nil, RowOptions{Trigger: tt.trigger})
			assert.Equal(t, tt.trigger, row.Trigger())
			assert.Equal(t, tt.trigger == config.RowTriggerIcon, row.playIcon.Visible())
			assert.Equal(t, tt.trigger == config.RowTriggerButton, row.playBtn.Visible())

			tt.tap(row)
			assert.True(t, row.IsPlaying())
			tt.tap(row)
			assert.False(t, row.IsPlaying())
		})
	}
}

func TestLoopRow_InvalidTriggerFallsBack(t *testing.T) {
	test.NewTempApp(t)
	row := NewLoopRow(model.NewLoop("loop"), nil, RowOptions{Trigger: "knob"})
	assert.Equal(t, config.DefaultRowTrigger, row.Trigger())

	row.SetTrigger(config.RowTriggerButton)
	assert.Equal(t, config.RowTriggerButton, row.Trigger())
	row.SetTrigger("knob")
	assert.Equal(t, config.DefaultRowTrigger, row.Trigger())
}

func TestLoopRow_PlayButtonLabel(t *testing.T) {
	test.NewTempApp(t)
	row := NewLoopRow(model.NewLoop("loop"), nil, RowOptions{Trigger: config.RowTriggerButton})

	assert.Equal(t, "Play", row.playBtn.Text)
	row.TogglePlay()
	assert.Equal(t, "Pause", row.playBtn.Text)
}

func TestLoopRow_UploadIsNoOp(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop")
	row := NewLoopRow(loop, nil, RowOptions{ShowUpload: true})
	require.True(t, row.uploadIcon.Visible())

	test.Tap(row.uploadIcon)
	assert.False(t, row.IsPlaying())
	assert.Equal(t, loop, row.Loop())

	row.SetShowUpload(false)
	assert.False(t, row.uploadIcon.Visible())
}

func TestLoopRow_NameOpensLoop(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop")
	row := NewLoopRow(loop, nil, RowOptions{})

	var opened model.Loop
	row.SetCallbacks(func(l model.Loop) { opened = l }, nil)

	test.Tap(row.nameBtn)
	assert.Equal(t, loop.ID, opened.ID)
	assert.Equal(t, "loop", row.nameBtn.Text)
}

func TestLoopRow_EditMode(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop")
	row := NewLoopRow(loop, nil, RowOptions{})
	assert.False(t, row.deleteBtn.Visible())

	var deleted []string
	row.SetCallbacks(nil, func(id string) { deleted = append(deleted, id) })

	row.SetEditMode(true)
	assert.True(t, row.EditMode())
	assert.True(t, row.deleteBtn.Visible())

	test.Tap(row.deleteBtn)
	assert.Equal(t, []string{loop.ID}, deleted)

	row.SetEditMode(false)
	assert.False(t, row.deleteBtn.Visible())
}

func TestLoopRow_SwipeToDelete(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop")
	row := NewLoopRow(loop, nil, RowOptions{})

	now := time.Unix(0, 0)
	row.gestures.now = func() time.Time { return now }

	deleted := 0
	row.SetCallbacks(nil, func(string) { deleted++ })

	swipeLeft := func() {
		row.TouchDown(touch(200, 10))
		now = now.Add(100 * time.Millisecond)
		row.TouchUp(touch(40, 12))
	}

	swipeLeft()
	assert.Equal(t, 0, deleted, "swipe outside edit mode must not delete")

	row.SetEditMode(true)
	swipeLeft()
	assert.Equal(t, 1, deleted)

	// A swipe right is ignored
	row.TouchDown(touch(40, 10))
	row.TouchUp(touch(200, 10))
	assert.Equal(t, 1, deleted)

	// A cancelled touch never completes a gesture
	row.TouchDown(touch(200, 10))
	row.TouchCancel(touch(200, 10))
	row.TouchUp(touch(40, 10))
	assert.Equal(t, 1, deleted)
}

func TestLoopRow_SetLoop(t *testing.T) {
	test.NewTempApp(t)
	loop := model.NewLoop("loop")
	row := NewLoopRow(loop, nil, RowOptions{})
	row.TogglePlay()

	loop.Tempo.SetBPM(150)
	row.SetLoop(loop)
	assert.True(t, row.IsPlaying(), "same identity keeps play state")
	assert.Equal(t, 150, row.Loop().Tempo.BPM)

	row.SetLoop(model.NewLoop("other"))
	assert.False(t, row.IsPlaying(), "new identity resets play state")
	assert.Equal(t, "other", row.nameBtn.Text)
}

func TestLoopRow_MinSize(t *testing.T) {
	test.NewTempApp(t)
	row := NewLoopRow(model.NewLoop("loop"), nil, RowOptions{})

	size := row.MinSize()
	assert.GreaterOrEqual(t, size.Width, RowMinWidth)
	assert.GreaterOrEqual(t, size.Height, RowMinHeight)
}
