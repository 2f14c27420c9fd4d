package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyMyLoops       = "my_loops"
	KeyEdit          = "edit"
	KeyDone          = "done"
	KeyDelete        = "delete"
	KeyPlay          = "play"
	KeyPause         = "pause"
	KeyUpload        = "upload"
	KeyNoLoops       = "no_loops"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyRowTrigger    = "row_trigger"
	KeyShowUpload    = "show_upload"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyClose         = "close"
	KeySettingsSaved = "settings_saved"
	KeyLamp          = "lamp"
	KeyHue           = "hue"
	KeySaturation    = "saturation"
	KeyBrightness    = "brightness"
	KeyPower         = "power"
	KeyPattern       = "pattern"
	KeyClear         = "clear"
	KeyBPM           = "bpm"
	KeySwing         = "swing"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Lampi Looper",
		KeyMyLoops:       "My Loops",
		KeyEdit:          "Edit",
		KeyDone:          "Done",
		KeyDelete:        "Delete",
		KeyPlay:          "Play",
		KeyPause:         "Pause",
		KeyUpload:        "Upload",
		KeyNoLoops:       "No loops",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyRowTrigger:    "Play control",
		KeyShowUpload:    "Show upload button",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyClose:         "Close",
		KeySettingsSaved: "Settings saved successfully!",
		KeyLamp:          "Lamp",
		KeyHue:           "Hue",
		KeySaturation:    "Saturation",
		KeyBrightness:    "Brightness",
		KeyPower:         "On",
		KeyPattern:       "Pattern",
		KeyClear:         "Clear",
		KeyBPM:           "BPM",
		KeySwing:         "Swing",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Lampi Лупер",
		KeyMyLoops:       "Мои лупы",
		KeyEdit:          "Изменить",
		KeyDone:          "Готово",
		KeyDelete:        "Удалить",
		KeyPlay:          "Играть",
		KeyPause:         "Пауза",
		KeyUpload:        "Загрузить",
		KeyNoLoops:       "Нет лупов",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyRowTrigger:    "Кнопка воспроизведения",
		KeyShowUpload:    "Показывать кнопку загрузки",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeyClose:         "Закрыть",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyLamp:          "Лампа",
		KeyHue:           "Оттенок",
		KeySaturation:    "Насыщенность",
		KeyBrightness:    "Яркость",
		KeyPower:         "Вкл",
		KeyPattern:       "Паттерн",
		KeyClear:         "Очистить",
		KeyBPM:           "BPM",
		KeySwing:         "Свинг",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Lampi Looper",
		KeyMyLoops:       "Meus Loops",
		KeyEdit:          "Editar",
		KeyDone:          "Concluir",
		KeyDelete:        "Excluir",
		KeyPlay:          "Tocar",
		KeyPause:         "Pausar",
		KeyUpload:        "Enviar",
		KeyNoLoops:       "Nenhum loop",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyRowTrigger:    "Controle de reprodução",
		KeyShowUpload:    "Mostrar botão de envio",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeyClose:         "Fechar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyLamp:          "Lâmpada",
		KeyHue:           "Matiz",
		KeySaturation:    "Saturação",
		KeyBrightness:    "Brilho",
		KeyPower:         "Ligado",
		KeyPattern:       "Padrão",
		KeyClear:         "Limpar",
		KeyBPM:           "BPM",
		KeySwing:         "Swing",
	}
}
