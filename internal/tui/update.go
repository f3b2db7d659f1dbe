package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/martalocci/taskdeck/internal/auth"
	"github.com/martalocci/taskdeck/internal/calendar"
	"github.com/martalocci/taskdeck/internal/config"
	"github.com/martalocci/taskdeck/internal/logger"
	"github.com/martalocci/taskdeck/internal/model"
)

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case ScreenLogin:
			return m.updateLogin(msg)
		case ScreenRegister:
			return m.updateRegister(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+r":
		m.resetRegisterInputs()
		m.screen = ScreenRegister
		return m, nil

	case "tab", "down":
		return m.focusLogin(m.loginFocus + 1)

	case "shift+tab", "up":
		return m.focusLogin(m.loginFocus - 1)

	case "enter":
		if m.loginFocus < len(m.loginInputs)-1 {
			return m.focusLogin(m.loginFocus + 1)
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) focusLogin(idx int) (tea.Model, tea.Cmd) {
	n := len(m.loginInputs)
	m.loginFocus = (idx + n) % n
	var cmd tea.Cmd
	for i := range m.loginInputs {
		if i == m.loginFocus {
			cmd = m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := m.loginInputs[0].Value()
	password := m.loginInputs[1].Value()

	user, err := m.authn.Login(username, password)
	if err != nil {
		m.loginErr = "Username o password non validi"
		return m, nil
	}

	if err := auth.SaveSession(user); err != nil {
		logger.Warn("Failed to persist session", logger.F("error", err))
	}
	m.enterDashboard(user)
	return m, nil
}

func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Focus positions: the three inputs, then the role selector.
	rolePos := len(m.regInputs)

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.resetLoginInputs()
		m.screen = ScreenLogin
		return m, nil

	case "tab", "down":
		return m.focusRegister(m.regFocus + 1)

	case "shift+tab", "up":
		return m.focusRegister(m.regFocus - 1)

	case "left":
		if m.regFocus == rolePos {
			m.regRole = (m.regRole + len(registrationRoles) - 1) % len(registrationRoles)
			return m, nil
		}

	case "right":
		if m.regFocus == rolePos {
			m.regRole = (m.regRole + 1) % len(registrationRoles)
			return m, nil
		}

	case "enter":
		if m.regFocus < rolePos {
			return m.focusRegister(m.regFocus + 1)
		}
		return m.submitRegister()
	}

	if m.regFocus < len(m.regInputs) {
		var cmd tea.Cmd
		m.regInputs[m.regFocus], cmd = m.regInputs[m.regFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) focusRegister(idx int) (tea.Model, tea.Cmd) {
	n := len(m.regInputs) + 1 // inputs plus the role selector
	m.regFocus = (idx + n) % n
	var cmd tea.Cmd
	for i := range m.regInputs {
		if i == m.regFocus {
			cmd = m.regInputs[i].Focus()
		} else {
			m.regInputs[i].Blur()
		}
	}
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	username := m.regInputs[0].Value()
	password := m.regInputs[1].Value()
	confirm := m.regInputs[2].Value()

	if password != confirm {
		m.regErr = "Le password non coincidono"
		return m, nil
	}

	user, err := m.authn.Register(username, password, registrationRoles[m.regRole])
	if err != nil {
		switch err {
		case auth.ErrUsernameTaken:
			m.regErr = "Username già esistente"
		case auth.ErrMissingFields:
			m.regErr = "Username e password sono obbligatori"
		default:
			m.regErr = err.Error()
		}
		return m, nil
	}

	if err := auth.SaveSession(user); err != nil {
		logger.Warn("Failed to persist session", logger.F("error", err))
	}
	m.enterDashboard(user)
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeTaskForm:
		return m.updateTaskForm(msg)
	case ModeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Logout):
		if err := auth.ClearSession(); err != nil {
			logger.Warn("Failed to clear session", logger.F("error", err))
		}
		logger.Info("Logout", logger.F("username", m.session.Username))
		m.leaveDashboard()
		return m, nil

	case key.Matches(msg, keys.Tab):
		if m.tab == TabTasks {
			m.tab = TabCalendar
		} else {
			m.tab = TabTasks
		}
		return m, nil

	case key.Matches(msg, keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	if m.tab == TabCalendar {
		return m.updateCalendarKeys(msg)
	}
	return m.updateTaskKeys(msg)
}

func (m Model) updateTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.taskCursor < len(m.visibleTasks())-1 {
			m.taskCursor++
		}

	case key.Matches(msg, keys.Add):
		m.editor.Cancel()
		m.resetFormInputs()
		m.mode = ModeTaskForm

	case key.Matches(msg, keys.Edit):
		if t := m.currentTask(); t != nil {
			m.editor.BeginEdit(t.ID)
			m.resetFormInputs()
			m.formInputs[formFieldTitle].SetValue(m.editor.Form.Title)
			m.formInputs[formFieldDate].SetValue(m.editor.Form.Date)
			m.mode = ModeTaskForm
		}

	case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
		if t := m.currentTask(); t != nil {
			m.editor.Toggle(t.ID)
		}

	case key.Matches(msg, keys.Delete):
		if t := m.currentTask(); t != nil {
			if m.cfg.ConfirmDelete {
				m.deleteID = t.ID
				m.mode = ModeConfirmDelete
			} else {
				m.deleteTask(t.ID)
			}
		}
	}

	return m, nil
}

func (m *Model) deleteTask(id string) {
	m.editor.Delete(id)
	if n := len(m.visibleTasks()); m.taskCursor >= n && n > 0 {
		m.taskCursor = n - 1
	}
	if len(m.visibleTasks()) == 0 {
		m.taskCursor = 0
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.deleteTask(m.deleteID)
		m.deleteID = ""
		m.mode = ModeNormal
	case "n", "esc":
		m.deleteID = ""
		m.mode = ModeNormal
	}
	return m, nil
}

func (m Model) updateCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.PrevMonth):
		m.calYear, m.calMonth = calendar.Prev(m.calYear, m.calMonth)
	case key.Matches(msg, keys.NextMonth):
		m.calYear, m.calMonth = calendar.Next(m.calYear, m.calMonth)
	}
	return m, nil
}

func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.editor.Cancel()
		m.resetFormInputs()
		m.mode = ModeNormal
		m.message = ""
		return m, nil

	case "tab", "down":
		return m.focusForm(m.formFocus + 1)

	case "shift+tab", "up":
		return m.focusForm(m.formFocus - 1)

	case "left":
		if m.formFocus == formFieldCategory {
			m.editor.Form.Category = prevCategory(m.editor.Form.Category)
			return m, nil
		}

	case "right":
		if m.formFocus == formFieldCategory {
			m.editor.Form.Category = nextCategory(m.editor.Form.Category)
			return m, nil
		}

	case "enter":
		if m.formFocus < formFieldCategory {
			return m.focusForm(m.formFocus + 1)
		}
		return m.submitTaskForm()
	}

	if m.formFocus < len(m.formInputs) {
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) focusForm(idx int) (tea.Model, tea.Cmd) {
	n := len(m.formInputs) + 1 // inputs plus the category selector
	m.formFocus = (idx + n) % n
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == m.formFocus {
			cmd = m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
	return m, cmd
}

func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	date := m.formInputs[formFieldDate].Value()
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		m.message = "Data non valida (YYYY-MM-DD)"
		return m, nil
	}

	m.editor.Form.Title = m.formInputs[formFieldTitle].Value()
	m.editor.Form.Date = date

	// A blank title is silently ignored; the form keeps its values.
	if !m.editor.Submit() {
		return m, nil
	}

	m.resetFormInputs()
	m.mode = ModeNormal
	m.message = ""
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.cfg.Theme == config.ThemeLight {
		m.cfg.Theme = config.ThemeDark
	} else {
		m.cfg.Theme = config.ThemeLight
	}
	m.theme = NewTheme(m.cfg.Theme)
	if err := m.cfg.Save(); err != nil {
		logger.Warn("Failed to save config", logger.F("error", err))
	}
	return m, nil
}

func prevCategory(c model.Category) model.Category {
	n := len(model.Categories)
	return model.Categories[(int(c)+n-1)%n]
}

func nextCategory(c model.Category) model.Category {
	return model.Categories[(int(c)+1)%len(model.Categories)]
}
