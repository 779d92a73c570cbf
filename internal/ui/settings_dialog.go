package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	apiURLEntry     *widget.Entry
	timeoutEntry    *widget.Entry
	retriesEntry    *widget.Entry
	lengthSelect    *widget.Select
	speechSelect    *widget.Select
	audioDirEntry   *widget.Entry
	languageSelect  *widget.Select
	languageOptions map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs
// after the values were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
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

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.retriesEntry = widget.NewEntry()
	sd.retriesEntry.SetPlaceHolder(strconv.Itoa(config.MinRetryAttempts) + "-" + strconv.Itoa(config.MaxRetryAttempts))

	lengths := lo.Map(model.SummaryLengths(), func(l model.SummaryLength, _ int) string {
		return string(l)
	})
	sd.lengthSelect = widget.NewSelect(lengths, nil)

	sd.speechSelect = widget.NewSelect(api.SpeechLanguages(), nil)

	sd.audioDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	audioDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.audioDirEntry)

	// Options are shown by display name and stored by code
	sd.languageOptions = sd.settings.GetLanguageOptions()
	labels := lo.Values(sd.languageOptions)
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyAPIBaseURL), sd.apiURLEntry),
		widget.NewFormItem(t(KeyTimeout), sd.timeoutEntry),
		widget.NewFormItem(t(KeyRetries), sd.retriesEntry),
		widget.NewFormItem(t(KeySummaryLength), sd.lengthSelect),
		widget.NewFormItem(t(KeySpeechLanguage), sd.speechSelect),
		widget.NewFormItem(t(KeyAudioDirectory), audioDirRow),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 420))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetTimeout().Seconds())))
	sd.retriesEntry.SetText(strconv.Itoa(sd.settings.GetRetryAttempts()))
	sd.lengthSelect.SetSelected(string(sd.settings.GetSummaryLength()))
	sd.speechSelect.SetSelected(sd.settings.GetSpeechLanguage())
	sd.audioDirEntry.SetText(sd.settings.GetAudioDirectory())
	sd.languageSelect.SetSelected(sd.languageOptions[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.audioDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIBaseURL(sd.apiURLEntry.Text)

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetTimeoutSeconds(seconds)
	}
	if attempts, err := strconv.Atoi(sd.retriesEntry.Text); err == nil {
		sd.settings.SetRetryAttempts(attempts)
	}

	if length, ok := model.ParseSummaryLength(sd.lengthSelect.Selected); ok {
		sd.settings.SetSummaryLength(length)
	}
	if sd.speechSelect.Selected != "" {
		sd.settings.SetSpeechLanguage(sd.speechSelect.Selected)
	}
	if sd.audioDirEntry.Text != "" {
		sd.settings.SetAudioDirectory(sd.audioDirEntry.Text)
	}

	if code, ok := lo.FindKey(sd.languageOptions, sd.languageSelect.Selected); ok {
		sd.settings.SetLanguage(code)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}
