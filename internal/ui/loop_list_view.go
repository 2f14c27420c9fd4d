package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/lampi/looper/internal/config"
	"github.com/lampi/looper/internal/model"
	"github.com/lampi/looper/internal/reconcile"
)

// Pattern dialog sizing
const (
	PatternDialogWidth  float32 = 360
	PatternDialogHeight float32 = 480
)

// ListOptions configures a LoopListView
type ListOptions struct {
	// Window hosts the pattern dialog; nil disables it
	Window     fyne.Window
	Trigger    config.RowTrigger
	ShowUpload bool
	Logger     zerolog.Logger
}

// LoopListView shows a LoopList as a vertical scroll of LoopRow widgets.
// Rows are keyed by loop ID so that a row survives list changes with its
// play state intact.
type LoopListView struct {
	list         *model.LoopList
	localization *Localization
	logger       zerolog.Logger
	window       fyne.Window

	trigger    config.RowTrigger
	showUpload bool
	editMode   bool

	rows map[string]*LoopRow

	// UI components
	title      *widget.Label
	editBtn    *widget.Button
	emptyLabel *widget.Label
	rowsBox    *fyne.Container
	content    fyne.CanvasObject
}

// NewLoopListView creates a view over list and starts following its changes
func NewLoopListView(list *model.LoopList, localization *Localization, opts ListOptions) *LoopListView {
	if localization == nil {
		localization = NewLocalization()
	}
	if !opts.Trigger.IsValid() {
		opts.Trigger = config.DefaultRowTrigger
	}

	v := &LoopListView{
		list:         list,
		localization: localization,
		logger:       opts.Logger,
		window:       opts.Window,
		trigger:      opts.Trigger,
		showUpload:   opts.ShowUpload,
		rows:         make(map[string]*LoopRow),
	}

	v.createUI()

	list.OnChange(func(old, new []model.Loop) {
		fyne.Do(func() {
			v.reconcile(old, new)
		})
	})

	return v
}

// Content returns the root canvas object of the view
func (v *LoopListView) Content() fyne.CanvasObject {
	return v.content
}

// RemoveLoops deletes the loops at the given positions. Positions that do
// not exist are skipped.
func (v *LoopListView) RemoveLoops(indices []int) {
	if err := v.list.ValidateIndices(indices); err != nil {
		v.logger.Warn().Err(err).Ints("indices", indices).Msg("ignoring invalid loop indices")
	}
	v.list.RemoveLoops(indices)
}

// RenderRow builds a row for loop with the view's current presentation
// settings. The loop itself is not modified.
func (v *LoopListView) RenderRow(loop model.Loop) *LoopRow {
	row := NewLoopRow(loop, v.localization, RowOptions{
		Trigger:    v.trigger,
		ShowUpload: v.showUpload,
		EditMode:   v.editMode,
		Logger:     v.logger,
	})
	row.SetCallbacks(v.onOpenLoop, v.onDeleteLoop)
	return row
}

// Row returns the row currently shown for the loop with id
func (v *LoopListView) Row(id string) (*LoopRow, bool) {
	row, ok := v.rows[id]
	return row, ok
}

// Rows returns the rows in display order
func (v *LoopListView) Rows() []*LoopRow {
	rows := make([]*LoopRow, 0, len(v.rowsBox.Objects))
	for _, obj := range v.rowsBox.Objects {
		if row, ok := obj.(*LoopRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// EditMode reports whether rows show their delete affordance
func (v *LoopListView) EditMode() bool {
	return v.editMode
}

// SetEditMode turns the delete affordance on or off for every row
func (v *LoopListView) SetEditMode(on bool) {
	v.editMode = on
	for _, row := range v.rows {
		row.SetEditMode(on)
	}
	v.updateEditButton()
	v.logger.Debug().Bool("edit_mode", on).Msg("edit mode changed")
}

// ToggleEditMode flips edit mode
func (v *LoopListView) ToggleEditMode() {
	v.SetEditMode(!v.editMode)
}

// SetRowTrigger changes the play/pause affordance of every row
func (v *LoopListView) SetRowTrigger(trigger config.RowTrigger) {
	if !trigger.IsValid() {
		trigger = config.DefaultRowTrigger
	}
	v.trigger = trigger
	for _, row := range v.rows {
		row.SetTrigger(trigger)
	}
}

// SetShowUpload shows or hides the upload icon on every row
func (v *LoopListView) SetShowUpload(show bool) {
	v.showUpload = show
	for _, row := range v.rows {
		row.SetShowUpload(show)
	}
}

// RefreshTexts re-reads every localized label
func (v *LoopListView) RefreshTexts() {
	v.title.SetText(v.localization.GetText(KeyMyLoops))
	v.emptyLabel.SetText(v.localization.GetText(KeyNoLoops))
	v.updateEditButton()
	for _, row := range v.rows {
		row.updateControls()
	}
}

// createUI creates the UI components
func (v *LoopListView) createUI() {
	v.title = widget.NewLabelWithStyle(v.localization.GetText(KeyMyLoops), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.editBtn = NewMobileUI().CreateMobileButton("", nil, v.ToggleEditMode)
	v.updateEditButton()

	v.emptyLabel = widget.NewLabelWithStyle(v.localization.GetText(KeyNoLoops), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.rowsBox = container.NewVBox()
	loops := v.list.Loops()
	for _, loop := range loops {
		row := v.RenderRow(loop)
		v.rows[loop.ID] = row
		v.rowsBox.Add(row)
	}
	v.updateEmptyState()

	header := container.NewBorder(nil, nil, nil, v.editBtn, v.title)
	body := container.NewStack(container.NewVScroll(v.rowsBox), container.NewCenter(v.emptyLabel))
	v.content = container.NewBorder(container.NewVBox(header, widget.NewSeparator()), nil, nil, nil, body)

	v.logger.Info().Int("loops", len(loops)).Msg("loop list created")
}

// reconcile brings the rows in line with new. Surviving rows are reused.
func (v *LoopListView) reconcile(old, new []model.Loop) {
	changes := reconcile.Diff(old, new)

	for _, removed := range changes.Removed {
		delete(v.rows, removed.ID)
	}

	objects := make([]fyne.CanvasObject, 0, len(new))
	for _, loop := range new {
		row, ok := v.rows[loop.ID]
		if !ok {
			row = v.RenderRow(loop)
			v.rows[loop.ID] = row
		} else {
			row.SetLoop(loop)
		}
		objects = append(objects, row)
	}

	v.rowsBox.Objects = objects
	v.rowsBox.Refresh()
	v.updateEmptyState()

	if !changes.Empty() {
		v.logger.Debug().
			Int("removed", len(changes.Removed)).
			Int("inserted", len(changes.Inserted)).
			Int("moved", len(changes.Moved)).
			Msg("rows reconciled")
	}
}

func (v *LoopListView) updateEditButton() {
	if v.editMode {
		v.editBtn.SetText(v.localization.GetText(KeyDone))
		v.editBtn.SetIcon(theme.ConfirmIcon())
		v.editBtn.Importance = widget.HighImportance
	} else {
		v.editBtn.SetText(v.localization.GetText(KeyEdit))
		v.editBtn.SetIcon(nil)
		v.editBtn.Importance = widget.MediumImportance
	}
	v.editBtn.Refresh()
}

func (v *LoopListView) updateEmptyState() {
	if len(v.rowsBox.Objects) == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
}

// onDeleteLoop removes the loop behind a row's delete action
func (v *LoopListView) onDeleteLoop(loopID string) {
	index := v.list.IndexOf(loopID)
	if index < 0 {
		v.logger.Warn().Str("loop_id", loopID).Msg("delete requested for unknown loop")
		return
	}
	v.logger.Info().Str("loop_id", loopID).Int("index", index).Msg("deleting loop")
	v.RemoveLoops([]int{index})
}

// onOpenLoop shows the pattern editor for loop
func (v *LoopListView) onOpenLoop(loop model.Loop) {
	v.logger.Debug().Str("loop_id", loop.ID).Msg("opening pattern")
	if v.window == nil {
		return
	}

	grid := NewPatternGrid(v.list, loop.ID, v.localization, v.logger)
	d := dialog.NewCustom(loop.GetDisplayName(), v.localization.GetText(KeyClose), grid.Content(), v.window)
	d.Resize(fyne.NewSize(PatternDialogWidth, PatternDialogHeight))
	d.Show()
}
