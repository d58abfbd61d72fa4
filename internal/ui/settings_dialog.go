package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-labeler/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	widthEntry      *widget.Entry
	extensionsEntry *widget.Entry
	languageSelect  *widget.Select
	watchCheck      *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultDisplayWidth))

	sd.extensionsEntry = widget.NewEntry()
	sd.extensionsEntry.SetPlaceHolder(".png, .jpg")

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.watchCheck = widget.NewCheck(t(KeyWatchFolder), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyDisplayWidth)),
		sd.widthEntry,

		widget.NewLabel(t(KeyImageExtensions)),
		sd.extensionsEntry,

		sd.watchCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetDisplayWidth()))
	sd.extensionsEntry.SetText(strings.Join(sd.settings.GetImageExtensions(), ", "))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.watchCheck.SetChecked(sd.settings.GetWatchFolder())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to the settings
func (sd *SettingsDialog) apply() {
	if width, err := strconv.Atoi(strings.TrimSpace(sd.widthEntry.Text)); err == nil {
		sd.settings.SetDisplayWidth(width)
	}

	if exts := splitExtensions(sd.extensionsEntry.Text); len(exts) > 0 {
		sd.settings.SetImageExtensions(exts)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetWatchFolder(sd.watchCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func splitExtensions(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
}
