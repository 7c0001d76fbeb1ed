// Package tui is the sticky-note widget: a bubbletea program that owns the
// canonical record sequence and settings document for its session, refreshes
// the countdown block on a fixed cadence and edits both documents through
// draft forms that are committed atomically on confirm.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/deadline"
	"github.com/minqiz/ddlnote/internal/models"
	"github.com/minqiz/ddlnote/internal/theme"
)

type SessionState int

const (
	StateView SessionState = iota
	StatePickEdit
	StatePickDelete
	StateRecordForm
	StateConfirmDelete
	StateSettingsForm
)

// recordDraft is the edit surface for one record. The id is empty for an
// add; on commit it survives the edit unchanged.
type recordDraft struct {
	id    string
	name  string
	date  string
	clock string
}

// settingsDraft holds the settings form's text-typed fields. Nothing is
// written back to the document until the whole draft validates, and a
// cancelled form discards the draft entirely.
type settingsDraft struct {
	windowX      string
	windowY      string
	windowWidth  string
	windowHeight string
	fontFamily   string
	fontSize     string
	fontWeight   string
	fgColor      string
	bgColor      string
	alpha        string
	themeName    string
	autoStart    bool
}

type tickMsg time.Time

type Model struct {
	ctx      *cli.Context
	state    SessionState
	keys     KeyMap
	help     help.Model
	styles   theme.Styles
	records  []models.Deadline
	settings config.Document
	badData  bool
	display  string
	status   string

	form          *huh.Form
	draft         *recordDraft
	settingsForm  *settingsDraft
	pickedID      string
	width, height int
	quitting      bool
}

func NewModel(ctx *cli.Context) Model {
	records, recErr := ctx.Records.Load()
	settings := ctx.LoadSettings()

	m := Model{
		ctx:      ctx,
		state:    StateView,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   theme.Resolve(settings),
		records:  records,
		settings: settings,
		badData:  recErr != nil,
	}
	m.refresh(ctx.Clock())
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(constants.RefreshIntervalSec*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh regenerates the countdown block. The formatter itself never
// fails; the fixed error text only appears when the records document could
// not be decoded at startup.
func (m *Model) refresh(now time.Time) {
	if m.badData {
		m.display = deadline.BadDataText
		return
	}
	m.display = deadline.Format(m.records, now)
}

// recordForm builds the add/edit form over the draft.
func (m *Model) recordForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.draft.name),
			huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(&m.draft.date),
			huh.NewInput().Title("Due time (HH:MM)").Value(&m.draft.clock),
		),
	)
}

// pickForm builds a selection form over the current records for edit and
// delete. Labels show name and date, values are ids, so two records sharing
// both name and date remain distinct choices.
func (m *Model) pickForm(title string) *huh.Form {
	options := make([]huh.Option[string], 0, len(m.records))
	for _, rec := range m.records {
		date := rec.Date
		if date == "" {
			date = "no date"
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", rec.Name, date), rec.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title(title).Options(options...).Value(&m.pickedID),
		),
	)
}

// newSettingsDraft seeds the form from the live document.
func (m *Model) newSettingsDraft() *settingsDraft {
	doc := m.settings
	return &settingsDraft{
		windowX:      strconv.Itoa(doc.Int(constants.SettingWindowX, constants.DefaultWindowX)),
		windowY:      strconv.Itoa(doc.Int(constants.SettingWindowY, constants.DefaultWindowY)),
		windowWidth:  strconv.Itoa(doc.Int(constants.SettingWindowWidth, constants.DefaultWindowWidth)),
		windowHeight: strconv.Itoa(doc.Int(constants.SettingWindowHeight, constants.DefaultWindowHeight)),
		fontFamily:   doc.String(constants.SettingFontFamily, constants.DefaultFontFamily),
		fontSize:     strconv.Itoa(doc.Int(constants.SettingFontSize, constants.DefaultFontSize)),
		fontWeight:   doc.String(constants.SettingFontWeight, constants.DefaultFontWeight),
		fgColor:      doc.String(constants.SettingFgColor, constants.DefaultFgColor),
		bgColor:      doc.String(constants.SettingBgColor, constants.DefaultBgColor),
		alpha:        strconv.FormatFloat(doc.Float(constants.SettingAlpha, constants.DefaultAlpha), 'f', -1, 64),
		themeName:    doc.String(constants.SettingTheme, constants.DefaultTheme),
		autoStart:    doc.Bool(constants.SettingAutoStart, constants.DefaultAutoStart),
	}
}

func (m *Model) settingsFormUI() *huh.Form {
	d := m.settingsForm

	themeOptions := make([]huh.Option[string], 0)
	for _, name := range m.ctx.Themes.Available() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Window X").Value(&d.windowX),
			huh.NewInput().Title("Window Y").Value(&d.windowY),
			huh.NewInput().Title("Window width").Value(&d.windowWidth),
			huh.NewInput().Title("Window height").Value(&d.windowHeight),
		),
		huh.NewGroup(
			huh.NewInput().Title("Font family").Value(&d.fontFamily),
			huh.NewInput().Title("Font size").Value(&d.fontSize),
			huh.NewSelect[string]().Title("Font weight").
				Options(
					huh.NewOption(constants.FontWeightNormal, constants.FontWeightNormal),
					huh.NewOption(constants.FontWeightBold, constants.FontWeightBold),
				).
				Value(&d.fontWeight),
			huh.NewInput().Title("Text color").Value(&d.fgColor),
			huh.NewInput().Title("Background color").Value(&d.bgColor),
			huh.NewInput().Title("Opacity (0.0 - 1.0)").Value(&d.alpha),
			huh.NewSelect[string]().Title("Theme").Options(themeOptions...).Value(&d.themeName),
			huh.NewConfirm().Title("Launch at login").Value(&d.autoStart),
		),
	)
}
