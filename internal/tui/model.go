package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/martalocci/taskdeck/internal/auth"
	"github.com/martalocci/taskdeck/internal/config"
	"github.com/martalocci/taskdeck/internal/logger"
	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
	"github.com/martalocci/taskdeck/internal/task"
)

// Screen is the top-level screen being shown.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenDashboard
)

// Tab is the active dashboard tab.
type Tab int

const (
	TabTasks Tab = iota
	TabCalendar
)

// Mode is the dashboard interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTaskForm
	ModeConfirmDelete
	ModeHelp
)

// Form input indices.
const (
	formFieldTitle = iota
	formFieldDate
	formFieldCategory
)

// Model is the main TUI model.
type Model struct {
	store store.Store
	cfg   *config.Config
	authn *auth.Service

	screen  Screen
	session model.Session
	theme   Theme

	// Login screen
	loginInputs []textinput.Model
	loginFocus  int
	loginErr    string

	// Register screen (username, password, confirm + role cycling)
	regInputs []textinput.Model
	regFocus  int
	regRole   int
	regErr    string

	// Dashboard
	tab        Tab
	editor     *task.Editor
	taskCursor int
	mode       Mode
	deleteID   string

	// Task form (title, date inputs; category cycles)
	formInputs []textinput.Model
	formFocus  int

	// Calendar
	calYear  int
	calMonth time.Month

	width   int
	height  int
	message string
}

// NewModel creates the TUI model. A persisted session skips the login
// screen.
func NewModel(st store.Store, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	m := Model{
		store: st,
		cfg:   cfg,
		authn: auth.NewService(st),
		theme: NewTheme(cfg.Theme),
	}
	m.resetLoginInputs()
	m.resetRegisterInputs()
	m.resetFormInputs()

	now := time.Now()
	m.calYear, m.calMonth = now.Year(), now.Month()

	if s := auth.LoadSession(); s.Active() {
		logger.Info("Resuming session", logger.F("username", s.Username))
		m.enterDashboard(model.User{Username: s.Username, Role: s.Role})
	}

	return m
}

// enterDashboard builds the per-user state after a successful login.
func (m *Model) enterDashboard(user model.User) {
	m.session = model.Session{Username: user.Username, Role: user.Role, LoggedInAt: time.Now()}
	m.editor = task.NewEditor(task.NewRepository(m.store), user.Username)
	m.screen = ScreenDashboard
	m.tab = TabTasks
	m.mode = ModeNormal
	m.taskCursor = 0
}

// leaveDashboard discards every per-user projection so nothing leaks into
// the next session.
func (m *Model) leaveDashboard() {
	m.session = model.Session{}
	m.editor = nil
	m.taskCursor = 0
	m.mode = ModeNormal
	m.message = ""
	m.resetLoginInputs()
	m.resetFormInputs()
	m.screen = ScreenLogin
}

func (m *Model) resetLoginInputs() {
	username := textinput.New()
	username.Placeholder = "Inserisci username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Inserisci password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	m.loginInputs = []textinput.Model{username, password}
	m.loginFocus = 0
	m.loginErr = ""
}

func (m *Model) resetRegisterInputs() {
	username := textinput.New()
	username.Placeholder = "Scegli un username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Inserisci password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "Ripeti password"
	confirm.CharLimit = 64
	confirm.Width = 32
	confirm.EchoMode = textinput.EchoPassword

	m.regInputs = []textinput.Model{username, password, confirm}
	m.regFocus = 0
	m.regRole = 0
	m.regErr = ""
}

func (m *Model) resetFormInputs() {
	title := textinput.New()
	title.Placeholder = "Cosa devi fare?"
	title.CharLimit = 256
	title.Width = 40
	title.Focus()

	date := textinput.New()
	date.Placeholder = model.DateFormat
	date.CharLimit = 10
	date.Width = 12
	date.SetValue(time.Now().Format(model.DateFormat))

	m.formInputs = []textinput.Model{title, date}
	m.formFocus = formFieldTitle
}

// registrationRoles offered on the register screen.
var registrationRoles = []string{model.RoleUser, model.RoleEditor, model.RoleGuest}

func (m *Model) visibleTasks() []model.Task {
	if m.editor == nil {
		return nil
	}
	return task.SortByDate(m.editor.Tasks())
}

func (m *Model) currentTask() *model.Task {
	tasks := m.visibleTasks()
	if m.taskCursor < len(tasks) {
		return &tasks[m.taskCursor]
	}
	return nil
}
