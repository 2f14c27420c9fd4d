package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/lampi/looper/internal/config"
	"github.com/lampi/looper/internal/logging"
	"github.com/lampi/looper/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	loops *model.LoopList
	lamp  *model.Lamp

	// UI components
	tabs     *container.AppTabs
	loopsTab *container.TabItem
	lampTab  *container.TabItem
	listView *LoopListView
	lampView *LampView
}

// NewRootUI creates the main UI over loops and lamp and puts it in window
func NewRootUI(window fyne.Window, app fyne.App, loops *model.LoopList, lamp *model.Lamp) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logging.Component("ui"),
		loops:        loops,
		lamp:         lamp,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// ListView returns the loop list screen
func (ui *RootUI) ListView() *LoopListView {
	return ui.listView
}

// LampView returns the lamp screen
func (ui *RootUI) LampView() *LampView {
	return ui.lampView
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.listView = NewLoopListView(ui.loops, ui.localization, ListOptions{
		Window:     ui.window,
		Trigger:    ui.settings.GetRowTrigger(),
		ShowUpload: ui.settings.GetShowUpload(),
		Logger:     ui.logger.With().Str("view", "loops").Logger(),
	})
	ui.lampView = NewLampView(ui.lamp, ui.localization, ui.logger.With().Str("view", "lamp").Logger())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.loopsTab = container.NewTabItemWithIcon(ui.localization.GetText(KeyMyLoops), theme.MediaMusicIcon(), ui.listView.Content())
	ui.lampTab = container.NewTabItemWithIcon(ui.localization.GetText(KeyLamp), theme.ColorPaletteIcon(), container.NewPadded(ui.lampView.Content()))
	ui.tabs = container.NewAppTabs(ui.loopsTab, ui.lampTab)
	ui.tabs.SetTabLocation(container.TabLocationBottom)

	topBar := container.NewHBox(layout.NewSpacer(), settingsBtn)
	content := container.NewBorder(topBar, nil, nil, nil, ui.tabs)

	ui.window.SetContent(content)
	ui.logger.Info().Int("loops", ui.loops.Len()).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu, sorted so the menu does not reshuffle
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.logger.Info().Str("language", langCode).Msg("language changed")

	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.loopsTab.Text = ui.localization.GetText(KeyMyLoops)
	ui.lampTab.Text = ui.localization.GetText(KeyLamp)
	ui.tabs.Refresh()

	ui.listView.RefreshTexts()
	ui.lampView.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings)
}

// applySettings pushes saved settings into the live widgets
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.listView.SetRowTrigger(ui.settings.GetRowTrigger())
	ui.listView.SetShowUpload(ui.settings.GetShowUpload())
	ui.refreshUITexts()
	ui.createMenu()
	ui.logger.Info().
		Str("language", ui.localization.GetCurrentLanguage()).
		Str("row_trigger", string(ui.settings.GetRowTrigger())).
		Msg("settings applied")
}
