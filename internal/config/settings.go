package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-labeler/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDisplayWidth    = "display_width"
	KeyImageExtensions = "image_extensions"
	KeyLanguage        = "app_language"
	KeyWatchFolder     = "watch_folder"
)

// Default values
const (
	DefaultDisplayWidth = 1500
	MinDisplayWidth     = 100
	MaxDisplayWidth     = 10000
	DefaultLanguage     = "system"
	DefaultWatchFolder  = true
)

// Settings manages UI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDisplayWidth returns the width images are scaled to before display
func (s *Settings) GetDisplayWidth() int {
	value := s.app.Preferences().Int(KeyDisplayWidth)
	if value <= 0 {
		s.SetDisplayWidth(DefaultDisplayWidth)
		return DefaultDisplayWidth
	}
	return value
}

// SetDisplayWidth sets the display width
func (s *Settings) SetDisplayWidth(width int) {
	if width < MinDisplayWidth {
		width = MinDisplayWidth
	}
	if width > MaxDisplayWidth {
		width = MaxDisplayWidth
	}
	s.app.Preferences().SetInt(KeyDisplayWidth, width)
}

// GetImageExtensions returns the file extensions scanned as images
func (s *Settings) GetImageExtensions() []string {
	value := s.app.Preferences().String(KeyImageExtensions)
	if value == "" {
		return platform.NormalizeExtensions(nil)
	}
	return platform.NormalizeExtensions(strings.Split(value, ","))
}

// SetImageExtensions sets the scanned extensions
func (s *Settings) SetImageExtensions(exts []string) {
	s.app.Preferences().SetString(KeyImageExtensions, strings.Join(platform.NormalizeExtensions(exts), ","))
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
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWatchFolder returns whether the open dataset is rescanned on change
func (s *Settings) GetWatchFolder() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchFolder, DefaultWatchFolder)
}

// SetWatchFolder sets whether the open dataset is watched
func (s *Settings) SetWatchFolder(watch bool) {
	s.app.Preferences().SetBool(KeyWatchFolder, watch)
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
