package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/config"
	"github.com/ytget/image-labeler/internal/logging"
	"github.com/ytget/image-labeler/internal/platform"
	"github.com/ytget/image-labeler/internal/preview"
	"github.com/ytget/image-labeler/internal/session"
	"github.com/ytget/image-labeler/internal/watch"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	image        *canvas.Image
	statusLabel  *widget.Label
	messageLabel *widget.Label
	progressLbl  *widget.Label
	classBox     *fyne.Container
	checks       []*widget.Check

	openBtn     *widget.Button
	classifyBtn *widget.Button
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	addClassBtn *widget.Button
	revealBtn   *widget.Button

	// refreshing suppresses OnChanged while checkboxes are synced to the session
	refreshing bool

	watcher     *watch.Watcher
	watchCancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, sess *session.Session, settings *config.Settings, logger *zap.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		session:      sess,
		settings:     settings,
		localization: localization,
		logger:       logging.OrNop(logger),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.bindKeys()
	window.SetCloseIntercept(ui.onClose)

	ui.refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	t := ui.localization.GetText

	ui.image = canvas.NewImageFromImage(nil)
	ui.image.FillMode = canvas.ImageFillContain
	ui.image.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))

	ui.openBtn = widget.NewButton(IconFolder+" "+t(KeyOpenDataset), ui.onOpenDataset)
	ui.openBtn.Importance = widget.HighImportance
	ui.classifyBtn = widget.NewButton(t(KeyAutoClassify), ui.onAutoClassify)
	ui.prevBtn = widget.NewButton(IconPrevious+" "+t(KeyPrevious), ui.onPrevious)
	ui.nextBtn = widget.NewButton(t(KeyNext)+" "+IconNext, ui.onNext)
	ui.addClassBtn = widget.NewButton(IconAdd+" "+t(KeyAddClass), ui.onAddClass)
	ui.revealBtn = widget.NewButton(t(KeyReveal), ui.onRevealImage)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Importance = widget.DangerImportance
	ui.progressLbl = widget.NewLabel("")

	ui.classBox = container.NewVBox()
	classPanel := container.NewBorder(
		nil,
		container.NewVBox(ui.addClassBtn, ui.progressLbl),
		nil,
		nil,
		container.NewVScroll(ui.classBox),
	)
	sidePanel := container.NewGridWrap(fyne.NewSize(SidePanelWidth, ImageMinHeight), classPanel)

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.openBtn, ui.classifyBtn),
		container.NewHBox(ui.revealBtn),
		ui.statusLabel,
	)
	bottomPanel := container.NewBorder(nil, nil, ui.prevBtn, ui.nextBtn, ui.messageLabel)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		sidePanel,   // right
		ui.image,    // center
	)

	ui.window.SetContent(content)
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	openItem := fyne.NewMenuItem(t(KeyOpenDataset), ui.onOpenDataset)
	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), openItem, settingsItem),
		languageMenu,
	))
}

// bindKeys wires the navigation shortcuts to the window canvas
func (ui *RootUI) bindKeys() {
	c := ui.window.Canvas()
	c.SetOnTypedRune(func(r rune) {
		switch r {
		case ShortcutNext:
			ui.onNext()
		case ShortcutPrevious:
			ui.onPrevious()
		}
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyRight:
			ui.onNext()
		case fyne.KeyLeft:
			ui.onPrevious()
		}
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.openBtn.SetText(IconFolder + " " + t(KeyOpenDataset))
	ui.classifyBtn.SetText(t(KeyAutoClassify))
	ui.prevBtn.SetText(IconPrevious + " " + t(KeyPrevious))
	ui.nextBtn.SetText(t(KeyNext) + " " + IconNext)
	ui.addClassBtn.SetText(IconAdd + " " + t(KeyAddClass))
	ui.revealBtn.SetText(t(KeyReveal))
	ui.refresh()
}

// onOpenDataset shows the folder picker, starting at the last dataset
func (ui *RootUI) onOpenDataset() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(KeyErrorOpening, err)
			return
		}
		if uri == nil {
			return
		}
		ui.OpenFolder(uri.Path())
	}, ui.window)

	if start := ui.dialogStartDir(); start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (ui *RootUI) dialogStartDir() string {
	if dir := ui.session.Dir(); dir != "" {
		return dir
	}
	dir, err := platform.GetHomePicturesDir()
	if err != nil {
		return ""
	}
	return dir
}

// OpenFolder makes dir the active dataset and shows its first image
func (ui *RootUI) OpenFolder(dir string) {
	ui.stopWatching()

	if err := ui.session.OpenFolder(dir); err != nil {
		ui.showError(KeyErrorOpening, err)
	}

	ui.startWatching()
	ui.refresh()
}

func (ui *RootUI) onNext() {
	defer ui.releaseFocus()
	if err := ui.session.Next(); err != nil {
		return
	}
	ui.refresh()
}

func (ui *RootUI) onPrevious() {
	defer ui.releaseFocus()
	if err := ui.session.Previous(); err != nil {
		return
	}
	ui.refresh()
}

// releaseFocus hands key presses back to the canvas so the navigation
// shortcuts keep working after a checkbox or button was clicked
func (ui *RootUI) releaseFocus() {
	ui.window.Canvas().Unfocus()
}

// onAddClass asks for a class name
func (ui *RootUI) onAddClass() {
	t := ui.localization.GetText

	entry := widget.NewEntry()
	entry.SetPlaceHolder(t(KeyEnterClassName))
	items := []*widget.FormItem{widget.NewFormItem(t(KeyClassName), entry)}

	dialog.ShowForm(t(KeyAddClass), t(KeyAdd), t(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		ui.addClass(entry.Text)
	}, ui.window)
	ui.window.Canvas().Focus(entry)
}

func (ui *RootUI) addClass(name string) {
	if err := ui.session.AddClass(name); err != nil {
		ui.showError(KeyErrorSaving, err)
		return
	}
	ui.refresh()
}

// onClassToggled persists a checkbox change for the current image
func (ui *RootUI) onClassToggled(index int, value bool) {
	if ui.refreshing {
		return
	}
	defer ui.releaseFocus()
	if err := ui.session.SelectClass(index, value); err != nil {
		ui.showError(KeyErrorSaving, err)
		ui.refresh()
		return
	}
	ui.refreshProgress()
}

// onAutoClassify applies the classifier's suggestion for the current image
func (ui *RootUI) onAutoClassify() {
	if !ui.session.HasClassifier() {
		dialog.ShowInformation(ui.localization.GetText(KeyAutoClassify), ui.localization.GetText(KeyNoClassifier), ui.window)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ClassifyTimeout)
	defer cancel()

	if err := ui.session.AutoClassify(ctx); err != nil {
		ui.showError(KeyAutoClassify, err)
		return
	}
	ui.refresh()
	ui.messageLabel.Importance = widget.SuccessImportance
	ui.messageLabel.SetText(ui.localization.GetText(KeyClassified))
}

// onRevealImage opens the file manager at the current image
func (ui *RootUI) onRevealImage() {
	view, err := ui.session.View()
	if err != nil {
		return
	}
	if err := platform.OpenFileInManager(view.FullPath); err != nil {
		ui.showError(KeyErrorRevealing, err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.applySettings).Show()
}

// applySettings pushes saved settings into the session and rescans
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.session.SetWidth(ui.settings.GetDisplayWidth())
	ui.session.SetExtensions(ui.settings.GetImageExtensions())

	ui.stopWatching()
	if ui.session.IsOpen() {
		if err := ui.session.Rescan(); err != nil {
			ui.showError(KeyErrorOpening, err)
		}
		ui.startWatching()
	}

	ui.createMenu()
	ui.refreshUITexts()
}

// onFolderChanged runs on the UI thread after the watcher saw images come or go
func (ui *RootUI) onFolderChanged() {
	if err := ui.session.Rescan(); err != nil {
		ui.logger.Warn("Rescan failed", zap.Error(err))
		return
	}
	ui.refresh()
	ui.messageLabel.Importance = widget.MediumImportance
	ui.messageLabel.SetText(ui.localization.GetText(KeyDatasetRefreshed))
}

func (ui *RootUI) startWatching() {
	if !ui.settings.GetWatchFolder() || !ui.session.IsOpen() {
		return
	}

	w, err := watch.New(ui.session.Dir(), ui.settings.GetImageExtensions(), WatchDebounce, func() {
		fyne.Do(ui.onFolderChanged)
	}, ui.logger)
	if err != nil {
		ui.logger.Warn("Folder watch unavailable", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		cancel()
		w.Stop()
		ui.logger.Warn("Folder watch unavailable", zap.Error(err))
		return
	}
	ui.watcher = w
	ui.watchCancel = cancel
}

func (ui *RootUI) stopWatching() {
	if ui.watchCancel != nil {
		ui.watchCancel()
		ui.watchCancel = nil
	}
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}
}

// onClose flushes labels before the window goes away
func (ui *RootUI) onClose() {
	ui.Shutdown()
	ui.window.Close()
}

// Shutdown stops the folder watcher and flushes the session
func (ui *RootUI) Shutdown() {
	ui.stopWatching()
	if err := ui.session.Close(); err != nil {
		ui.logger.Error("Failed to save labels on exit", zap.Error(err))
	}
}

// refresh renders the session's current view
func (ui *RootUI) refresh() {
	ui.refreshing = true
	defer func() { ui.refreshing = false }()

	ui.messageLabel.SetText("")
	ui.syncChecks(ui.session.Classes())
	ui.refreshProgress()

	view, err := ui.session.View()
	if err != nil {
		ui.setImageEnabled(false)
		ui.image.Image = nil
		ui.image.Refresh()
		if ui.session.IsOpen() {
			ui.statusLabel.SetText(ui.localization.GetText(KeyNoImages))
		} else {
			ui.statusLabel.SetText(ui.localization.GetText(KeyNoDataset))
		}
		return
	}

	ui.setImageEnabled(true)
	ui.statusLabel.SetText(fmt.Sprintf(PositionFormat, view.Index+1, view.Total) + MiddleDotSeparator + view.Path)
	for i, class := range view.Classes {
		ui.checks[i].SetChecked(class.Checked)
	}

	img, err := ui.session.Image()
	if err != nil {
		ui.image.Image = nil
		ui.image.Refresh()
		ui.messageLabel.Importance = widget.DangerImportance
		if errors.Is(err, preview.ErrMissingFile) {
			ui.messageLabel.SetText(ui.localization.GetText(KeyMissingFile) + ": " + view.Path)
		} else {
			ui.messageLabel.SetText(err.Error())
		}
		ui.logger.Warn("Failed to load image", zap.String("image", view.Path), zap.Error(err))
		return
	}
	ui.image.Image = img
	ui.image.Refresh()
}

// syncChecks rebuilds the checkbox list when the class list changed
func (ui *RootUI) syncChecks(classes []string) {
	same := len(classes) == len(ui.checks)
	for i := 0; same && i < len(classes); i++ {
		same = ui.checks[i].Text == classes[i]
	}
	if same {
		return
	}

	ui.checks = make([]*widget.Check, len(classes))
	objects := make([]fyne.CanvasObject, len(classes))
	for i, name := range classes {
		index := i
		check := widget.NewCheck(name, func(value bool) {
			ui.onClassToggled(index, value)
		})
		ui.checks[i] = check
		objects[i] = container.NewGridWrap(fyne.NewSize(SidePanelWidth, CheckboxHeight), check)
	}
	ui.classBox.Objects = objects
	ui.classBox.Refresh()
}

func (ui *RootUI) setImageEnabled(enabled bool) {
	for _, check := range ui.checks {
		if enabled {
			check.Enable()
		} else {
			check.SetChecked(false)
			check.Disable()
		}
	}
	if enabled {
		ui.revealBtn.Enable()
		ui.classifyBtn.Enable()
		ui.prevBtn.Enable()
		ui.nextBtn.Enable()
	} else {
		ui.revealBtn.Disable()
		ui.classifyBtn.Disable()
		ui.prevBtn.Disable()
		ui.nextBtn.Disable()
	}
	if ui.session.IsOpen() {
		ui.addClassBtn.Enable()
	} else {
		ui.addClassBtn.Disable()
	}
}

func (ui *RootUI) refreshProgress() {
	if !ui.session.IsOpen() {
		ui.progressLbl.SetText("")
		return
	}
	stats := ui.session.Stats()
	ui.progressLbl.SetText(fmt.Sprintf(ui.localization.GetText(KeyLabeledProgress), stats.Labeled, stats.Images))
}

// showError logs and displays err under a localized title
func (ui *RootUI) showError(titleKey string, err error) {
	ui.logger.Warn(ui.localization.GetText(titleKey), zap.Error(err))
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(titleKey), err), ui.window)
}
