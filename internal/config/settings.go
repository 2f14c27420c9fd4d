package config

import (
	"fyne.io/fyne/v2"
)

// RowTrigger selects which affordance toggles play/pause on a loop row
type RowTrigger string

const (
	// RowTriggerIcon toggles on a tap of the play/pause icon
	RowTriggerIcon RowTrigger = "icon"

	// RowTriggerButton toggles through a dedicated button
	RowTriggerButton RowTrigger = "button"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage   = "app_language"
	KeyRowTrigger = "row_trigger"
	KeyShowUpload = "show_upload"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultRowTrigger = RowTriggerIcon
	DefaultShowUpload = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetRowTrigger returns the configured play/pause affordance
func (s *Settings) GetRowTrigger() RowTrigger {
	trigger := RowTrigger(s.app.Preferences().String(KeyRowTrigger))
	if !trigger.IsValid() {
		s.SetRowTrigger(DefaultRowTrigger)
		return DefaultRowTrigger
	}
	return trigger
}

// SetRowTrigger sets the play/pause affordance; unknown values reset to the default
func (s *Settings) SetRowTrigger(trigger RowTrigger) {
	if !trigger.IsValid() {
		trigger = DefaultRowTrigger
	}
	s.app.Preferences().SetString(KeyRowTrigger, string(trigger))
}

// GetRowTriggerOptions returns available trigger options
func (s *Settings) GetRowTriggerOptions() []RowTrigger {
	return []RowTrigger{RowTriggerIcon, RowTriggerButton}
}

// GetShowUpload returns whether rows render the upload icon
func (s *Settings) GetShowUpload() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowUpload, DefaultShowUpload)
}

// SetShowUpload sets whether rows render the upload icon
func (s *Settings) SetShowUpload(show bool) {
	s.app.Preferences().SetBool(KeyShowUpload, show)
}

// IsValid returns true for known trigger styles
func (t RowTrigger) IsValid() bool {
	return t == RowTriggerIcon || t == RowTriggerButton
}
