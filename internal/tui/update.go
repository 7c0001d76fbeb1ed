package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/minqiz/ddlnote/internal/autostart"
	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/logger"
	"github.com/minqiz/ddlnote/internal/models"
	"github.com/minqiz/ddlnote/internal/theme"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.refresh(m.ctx.Clock())
		return m, tick()
	}

	switch m.state {
	case StateView:
		return m.updateView(msg)
	case StatePickEdit, StatePickDelete, StateRecordForm, StateSettingsForm:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		// Exit-time persistence covers edits applied during the session.
		m.ctx.SaveSettings(m.settings)
		if !m.badData {
			m.ctx.SaveRecords(m.records)
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Refresh):
		m.refresh(m.ctx.Clock())

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Add):
		m.status = ""
		m.draft = &recordDraft{clock: "23:59"}
		m.form = m.recordForm()
		m.state = StateRecordForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		if len(m.records) == 0 {
			m.status = "nothing to edit"
			return m, nil
		}
		m.status = ""
		m.pickedID = ""
		m.form = m.pickForm("Edit which deadline?")
		m.state = StatePickEdit
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.records) == 0 {
			m.status = "nothing to delete"
			return m, nil
		}
		m.status = ""
		m.pickedID = ""
		m.form = m.pickForm("Delete which deadline?")
		m.state = StatePickDelete
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Settings):
		m.status = ""
		m.settingsForm = m.newSettingsDraft()
		m.form = m.settingsFormUI()
		m.state = StateSettingsForm
		return m, m.form.Init()
	}
	return m, nil
}

// updateForm drives whichever huh form is active and dispatches its result.
// An aborted form discards the draft with no side effects on the owned
// documents.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.toView(), nil

	case huh.StateCompleted:
		switch m.state {
		case StatePickEdit:
			return m.startEdit()
		case StatePickDelete:
			m.state = StateConfirmDelete
			return m, nil
		case StateRecordForm:
			return m.commitRecord()
		case StateSettingsForm:
			return m.commitSettings()
		}
	}
	return m, cmd
}

func (m Model) toView() Model {
	m.state = StateView
	m.form = nil
	m.draft = nil
	m.settingsForm = nil
	m.pickedID = ""
	return m
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	for _, rec := range m.records {
		if rec.ID == m.pickedID {
			date, clock := rec.Date, ""
			if due, err := rec.DueAt(); err == nil {
				date = due.Format(constants.DateFormat)
				clock = due.Format(constants.TimeFormat)
			}
			m.draft = &recordDraft{id: rec.ID, name: rec.Name, date: date, clock: clock}
			m.form = m.recordForm()
			m.state = StateRecordForm
			return m, m.form.Init()
		}
	}
	return m.toView(), nil
}

// commitRecord validates the draft and applies it to the owned record
// sequence. A rejected draft keeps its field values and reopens the form so
// the user can correct them.
func (m Model) commitRecord() (tea.Model, tea.Cmd) {
	canonical, err := config.ValidateRecord(m.draft.name, m.draft.date, m.draft.clock)
	if err != nil {
		m.status = err.Error()
		m.form = m.recordForm()
		return m, m.form.Init()
	}

	if m.draft.id == "" {
		m.records = append(m.records, models.NewDeadline(m.draft.name, canonical))
	} else {
		for i := range m.records {
			if m.records[i].ID == m.draft.id {
				m.records[i].Name = m.draft.name
				m.records[i].Date = canonical
				break
			}
		}
	}
	m.ctx.SaveRecords(m.records)
	m.refresh(m.ctx.Clock())
	return m.toView(), nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		for i := range m.records {
			if m.records[i].ID == m.pickedID {
				m.records = append(m.records[:i], m.records[i+1:]...)
				break
			}
		}
		m.ctx.SaveRecords(m.records)
		m.refresh(m.ctx.Clock())
		return m.toView(), nil
	case "n", "N", "esc":
		return m.toView(), nil
	}
	return m, nil
}

// commitSettings validates the whole draft, applies it atomically to the
// owned document and persists both documents, mirroring the save action of
// the settings dialog. Invalid numeric input keeps the draft and reopens
// the form.
func (m Model) commitSettings() (tea.Model, tea.Cmd) {
	d := m.settingsForm

	reject := func(msg string) (tea.Model, tea.Cmd) {
		m.status = msg
		m.form = m.settingsFormUI()
		return m, m.form.Init()
	}

	windowX, err := strconv.Atoi(d.windowX)
	if err != nil {
		return reject("window position must be numeric")
	}
	windowY, err := strconv.Atoi(d.windowY)
	if err != nil {
		return reject("window position must be numeric")
	}
	windowWidth, err := strconv.Atoi(d.windowWidth)
	if err != nil {
		return reject("window size must be numeric")
	}
	windowHeight, err := strconv.Atoi(d.windowHeight)
	if err != nil {
		return reject("window size must be numeric")
	}
	fontSize, err := strconv.Atoi(d.fontSize)
	if err != nil {
		return reject("font size must be numeric")
	}
	alpha, err := strconv.ParseFloat(d.alpha, 64)
	if err != nil {
		return reject("opacity must be numeric")
	}

	update := config.Update{
		WindowX:      &windowX,
		WindowY:      &windowY,
		WindowWidth:  &windowWidth,
		WindowHeight: &windowHeight,
		FontFamily:   &d.fontFamily,
		FontSize:     &fontSize,
		FontWeight:   &d.fontWeight,
		FgColor:      &d.fgColor,
		BgColor:      &d.bgColor,
		Alpha:        &alpha,
		Theme:        &d.themeName,
		AutoStart:    &d.autoStart,
	}
	if err := update.Apply(m.settings, m.ctx.Themes); err != nil {
		return reject(err.Error())
	}

	// OS registration follows the setting; a failure is logged and the
	// document keeps the requested state for the next attempt.
	entry := autostart.Entry{AppName: constants.AppName, Command: m.ctx.StartupCommand}
	if d.autoStart {
		if err := autostart.Enable(entry); err != nil {
			logger.Error("Failed to enable auto-start", "error", err)
		}
	} else {
		if err := autostart.Disable(entry); err != nil {
			logger.Error("Failed to disable auto-start", "error", err)
		}
	}

	m.ctx.SaveSettings(m.settings)
	if !m.badData {
		m.ctx.SaveRecords(m.records)
	}
	m.styles = theme.Resolve(m.settings)
	m.refresh(m.ctx.Clock())
	return m.toView(), nil
}
