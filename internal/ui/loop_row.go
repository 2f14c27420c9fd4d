package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/lampi/looper/internal/config"
	"github.com/lampi/looper/internal/model"
)

// tappableIcon is an icon that reports taps
type tappableIcon struct {
	widget.Icon
	onTapped func()
}

func newTappableIcon(res fyne.Resource, onTapped func()) *tappableIcon {
	icon := &tappableIcon{onTapped: onTapped}
	icon.ExtendBaseWidget(icon)
	icon.SetResource(res)
	return icon
}

// Tapped implements fyne.Tappable
func (t *tappableIcon) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// MinSize keeps the icon large enough to hit with a finger
func (t *tappableIcon) MinSize() fyne.Size {
	return fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize)
}

// RowOptions configures how a LoopRow presents itself
type RowOptions struct {
	Trigger    config.RowTrigger
	ShowUpload bool
	EditMode   bool
	Logger     zerolog.Logger
}

// LoopRow presents one loop: its name, an upload icon and a play/pause
// toggle. The playing flag lives only in the row.
type LoopRow struct {
	widget.BaseWidget

	loop         model.Loop
	localization *Localization
	logger       zerolog.Logger

	trigger    config.RowTrigger
	showUpload bool
	editMode   bool
	isPlaying  bool

	// UI components
	uploadIcon *tappableIcon
	nameBtn    *widget.Button
	playIcon   *tappableIcon
	playBtn    *widget.Button
	deleteBtn  *widget.Button
	gestures   *GestureHandler
	mobileUI   *MobileUI

	// Callbacks
	onOpen   func(loop model.Loop)
	onDelete func(loopID string)
}

// NewLoopRow creates a row for loop
func NewLoopRow(loop model.Loop, localization *Localization, opts RowOptions) *LoopRow {
	if localization == nil {
		localization = NewLocalization()
	}
	if !opts.Trigger.IsValid() {
		opts.Trigger = config.DefaultRowTrigger
	}

	row := &LoopRow{
		loop:         loop,
		localization: localization,
		logger:       opts.Logger.With().Str("loop_id", loop.ID).Logger(),
		trigger:      opts.Trigger,
		showUpload:   opts.ShowUpload,
		editMode:     opts.EditMode,
	}
	row.gestures = NewGestureHandler(row.onGesture)
	row.mobileUI = NewMobileUI()
	row.ExtendBaseWidget(row)
	row.createUI()
	row.updateControls()
	return row
}

// SetCallbacks sets the action callbacks
func (r *LoopRow) SetCallbacks(onOpen func(model.Loop), onDelete func(loopID string)) {
	r.onOpen = onOpen
	r.onDelete = onDelete
}

// Loop returns the loop shown by the row
func (r *LoopRow) Loop() model.Loop {
	return r.loop
}

// SetLoop refreshes the displayed loop data. The playing flag is kept: a
// row always shows the same loop identity.
func (r *LoopRow) SetLoop(loop model.Loop) {
	if loop.ID != r.loop.ID {
		r.logger.Warn().Str("new_id", loop.ID).Msg("row rebound to a different loop; resetting play state")
		r.isPlaying = false
		r.logger = r.logger.With().Str("loop_id", loop.ID).Logger()
	}
	r.loop = loop
	r.updateControls()
}

// IsPlaying reports the local play/pause flag
func (r *LoopRow) IsPlaying() bool {
	return r.isPlaying
}

// PlayGlyph returns the symbol the toggle currently shows
func (r *LoopRow) PlayGlyph() string {
	if r.isPlaying {
		return IconPause
	}
	return IconPlay
}

// TogglePlay flips the play/pause flag. Nothing outside the row changes.
func (r *LoopRow) TogglePlay() {
	r.isPlaying = !r.isPlaying
	r.logger.Debug().Bool("playing", r.isPlaying).Str("trigger", string(r.trigger)).Msg("play toggled")
	r.updateControls()
}

// SetTrigger switches between the tappable icon and the dedicated button
func (r *LoopRow) SetTrigger(trigger config.RowTrigger) {
	if !trigger.IsValid() {
		trigger = config.DefaultRowTrigger
	}
	r.trigger = trigger
	r.updateControls()
}

// Trigger returns the active play/pause affordance
func (r *LoopRow) Trigger() config.RowTrigger {
	return r.trigger
}

// SetShowUpload shows or hides the upload icon
func (r *LoopRow) SetShowUpload(show bool) {
	r.showUpload = show
	r.updateControls()
}

// SetEditMode shows or hides the delete affordance
func (r *LoopRow) SetEditMode(on bool) {
	r.editMode = on
	r.updateControls()
}

// EditMode reports whether the delete affordance is shown
func (r *LoopRow) EditMode() bool {
	return r.editMode
}

// TouchDown implements mobile.Touchable
func (r *LoopRow) TouchDown(event *mobile.TouchEvent) {
	r.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (r *LoopRow) TouchUp(event *mobile.TouchEvent) {
	r.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (r *LoopRow) TouchCancel(event *mobile.TouchEvent) {
	r.gestures.TouchCancel(event)
}

// onGesture maps a swipe left in edit mode to delete
func (r *LoopRow) onGesture(gesture GestureType) {
	r.logger.Debug().Stringer("gesture", gesture).Msg("row gesture")
	if gesture == GestureSwipeLeft && r.editMode {
		r.requestDelete()
	}
}

func (r *LoopRow) requestDelete() {
	if r.onDelete == nil {
		r.logger.Warn().Msg("delete requested but no handler is set")
		return
	}
	r.onDelete(r.loop.ID)
}

// createUI creates the UI components
func (r *LoopRow) createUI() {
	r.uploadIcon = newTappableIcon(theme.UploadIcon(), func() {
		r.logger.Debug().Msg("upload tapped")
	})

	r.nameBtn = widget.NewButton("", func() {
		if r.onOpen != nil {
			r.onOpen(r.loop)
		}
	})
	r.nameBtn.Importance = widget.LowImportance
	r.nameBtn.Alignment = widget.ButtonAlignLeading

	r.playIcon = newTappableIcon(theme.MediaPlayIcon(), r.TogglePlay)

	r.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), r.TogglePlay)
	r.playBtn.Importance = widget.HighImportance

	r.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), r.requestDelete)
	r.deleteBtn.Importance = widget.DangerImportance
}

// updateControls syncs every control with the row state
func (r *LoopRow) updateControls() {
	r.nameBtn.SetText(r.loop.GetDisplayName())

	if r.isPlaying {
		r.playIcon.SetResource(theme.MediaPauseIcon())
		r.playBtn.SetIcon(theme.MediaPauseIcon())
		r.playBtn.SetText(r.localization.GetText(KeyPause))
	} else {
		r.playIcon.SetResource(theme.MediaPlayIcon())
		r.playBtn.SetIcon(theme.MediaPlayIcon())
		r.playBtn.SetText(r.localization.GetText(KeyPlay))
	}

	if r.trigger == config.RowTriggerButton {
		r.playIcon.Hide()
		r.playBtn.Show()
	} else {
		r.playBtn.Hide()
		r.playIcon.Show()
	}

	if r.showUpload {
		r.uploadIcon.Show()
	} else {
		r.uploadIcon.Hide()
	}

	if r.editMode {
		r.deleteBtn.Show()
	} else {
		r.deleteBtn.Hide()
	}

	r.Refresh()
}

// CreateRenderer creates the widget renderer
func (r *LoopRow) CreateRenderer() fyne.WidgetRenderer {
	return &loopRowRenderer{row: r}
}

// loopRowRenderer renders the loop row widget
type loopRowRenderer struct {
	row    *LoopRow
	layout *fyne.Container
}

// Layout arranges the components
func (lr *loopRowRenderer) Layout(size fyne.Size) {
	if lr.layout == nil {
		lr.createLayout()
	}
	lr.layout.Resize(size)
}

// MinSize returns the minimum size
func (lr *loopRowRenderer) MinSize() fyne.Size {
	if lr.layout == nil {
		lr.createLayout()
	}
	min := lr.layout.MinSize()
	if h := lr.row.mobileUI.RowHeight(); min.Height < h {
		min.Height = h
	}
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	return min
}

// Refresh refreshes the renderer
func (lr *loopRowRenderer) Refresh() {
	if lr.layout == nil {
		lr.createLayout()
	}
	lr.layout.Refresh()
}

// Objects returns the container objects
func (lr *loopRowRenderer) Objects() []fyne.CanvasObject {
	if lr.layout == nil {
		lr.createLayout()
	}
	return []fyne.CanvasObject{lr.layout}
}

// Destroy cleans up the renderer
func (lr *loopRowRenderer) Destroy() {}

// createLayout creates the main layout: upload icon on the left, the name in
// the middle and the toggle pinned to the right edge
func (lr *loopRowRenderer) createLayout() {
	r := lr.row

	right := container.NewHBox(r.playIcon, r.playBtn, r.deleteBtn)
	main := container.NewBorder(nil, nil, r.uploadIcon, right, r.nameBtn)

	separator := canvas.NewLine(theme.Color(theme.ColorNameSeparator))
	separator.StrokeWidth = 1

	lr.layout = container.NewBorder(nil, separator, nil, nil, container.NewPadded(main))
}
