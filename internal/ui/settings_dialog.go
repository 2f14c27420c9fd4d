package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lampi/looper/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// maps select labels back to language codes
	languageCodes map[string]string

	// UI components
	languageSelect *widget.Select
	triggerRadio   *widget.RadioGroup
	uploadCheck    *widget.Check

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	if localization == nil {
		localization = NewLocalization()
	}
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
		onSaved:       onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, sorted by code for a stable order
	languageLabels := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageOptions := make([]string, 0, len(codes))
	for _, code := range codes {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	triggerOptions := []string{}
	for _, trigger := range sd.settings.GetRowTriggerOptions() {
		triggerOptions = append(triggerOptions, string(trigger))
	}
	sd.triggerRadio = widget.NewRadioGroup(triggerOptions, nil)
	sd.triggerRadio.Horizontal = true
	sd.triggerRadio.Required = true

	sd.uploadCheck = widget.NewCheck(sd.localization.GetText(KeyShowUpload), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyRowTrigger)+":"),
		sd.triggerRadio,
		sd.uploadCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.triggerRadio.SetSelected(string(sd.settings.GetRowTrigger()))
	sd.uploadCheck.SetChecked(sd.settings.GetShowUpload())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.triggerRadio.Selected != "" {
		sd.settings.SetRowTrigger(config.RowTrigger(sd.triggerRadio.Selected))
	}

	sd.settings.SetShowUpload(sd.uploadCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
