package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}

	// Unknown languages fall back to the default
	settings.SetLanguage("xx")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected unknown language to reset to %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
}

func TestRowTrigger(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	// Test default value
	if trigger := settings.GetRowTrigger(); trigger != DefaultRowTrigger {
		t.Errorf("Expected default trigger %s, got %s", DefaultRowTrigger, trigger)
	}

	// Test setting custom value
	settings.SetRowTrigger(RowTriggerButton)
	if trigger := settings.GetRowTrigger(); trigger != RowTriggerButton {
		t.Errorf("Expected trigger %s, got %s", RowTriggerButton, trigger)
	}

	// Invalid values reset to the default
	settings.SetRowTrigger("swipe")
	if trigger := settings.GetRowTrigger(); trigger != DefaultRowTrigger {
		t.Errorf("Invalid trigger should reset to %s, got %s", DefaultRowTrigger, trigger)
	}

	// A corrupted stored value is repaired on read
	app.Preferences().SetString(KeyRowTrigger, "garbage")
	if trigger := settings.GetRowTrigger(); trigger != DefaultRowTrigger {
		t.Errorf("Expected corrupted trigger to read as %s, got %s", DefaultRowTrigger, trigger)
	}
	if stored := app.Preferences().String(KeyRowTrigger); stored != string(DefaultRowTrigger) {
		t.Errorf("Expected stored trigger to be repaired, got %s", stored)
	}
}

func TestShowUpload(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	if !settings.GetShowUpload() {
		t.Error("Expected upload icon to be shown by default")
	}

	settings.SetShowUpload(false)
	if settings.GetShowUpload() {
		t.Error("Expected upload icon to be hidden after SetShowUpload(false)")
	}
}

func TestGetRowTriggerOptions(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	options := settings.GetRowTriggerOptions()
	expected := []RowTrigger{RowTriggerIcon, RowTriggerButton}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d trigger options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("Trigger option %d: expected %s, got %s", i, expected[i], options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
