package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/martalocci/taskdeck/internal/calendar"
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.screen {
	case ScreenLogin:
		return m.renderLogin()
	case ScreenRegister:
		return m.renderRegister()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderLogin() string {
	var s strings.Builder

	s.WriteString(m.theme.Header.Render("Benvenuto") + "\n")
	s.WriteString(m.theme.Help.Render("Accedi al tuo account") + "\n\n")

	s.WriteString("Username\n" + m.loginInputs[0].View() + "\n\n")
	s.WriteString("Password\n" + m.loginInputs[1].View() + "\n")

	if m.loginErr != "" {
		s.WriteString("\n" + m.theme.ErrorText.Render(m.loginErr) + "\n")
	}

	s.WriteString("\n" + m.theme.Help.Render("Credenziali demo: admin/admin123 · user/user123 · demo/demo") + "\n")
	s.WriteString(m.theme.Help.Render("enter accedi · ctrl+r registrati · ctrl+c esci"))

	card := m.theme.Modal.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderRegister() string {
	var s strings.Builder

	s.WriteString(m.theme.Header.Render("Registrazione") + "\n")
	s.WriteString(m.theme.Help.Render("Crea un nuovo account locale") + "\n\n")

	s.WriteString("Username\n" + m.regInputs[0].View() + "\n\n")
	s.WriteString("Password\n" + m.regInputs[1].View() + "\n\n")
	s.WriteString("Conferma Password\n" + m.regInputs[2].View() + "\n\n")

	role := registrationRoles[m.regRole]
	roleLine := "Ruolo: " + role
	if m.regFocus == len(m.regInputs) {
		roleLine = "Ruolo: ❮ " + role + " ❯"
	}
	s.WriteString(roleLine + "\n")

	if m.regErr != "" {
		s.WriteString("\n" + m.theme.ErrorText.Render(m.regErr) + "\n")
	}

	s.WriteString("\n" + m.theme.Help.Render("enter crea account · esc torna al login"))

	card := m.theme.Modal.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderDashboard() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	var content string
	if m.tab == TabCalendar {
		content = m.renderCalendar()
	} else {
		content = m.renderTaskList()
	}

	body := lipgloss.NewStyle().Height(m.height - 4).Render(content)

	switch m.mode {
	case ModeTaskForm:
		body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center,
			m.renderTaskForm())
	case ModeConfirmDelete:
		body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center,
			m.renderConfirmDelete())
	case ModeHelp:
		body = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render("Taskdeck")
	user := m.theme.Help.Render(fmt.Sprintf("%s · %s", m.session.Username, m.session.Role))

	tabs := make([]string, 0, 2)
	for i, name := range []string{"Task", "Calendario"} {
		style := m.theme.TabInactive
		if Tab(i) == m.tab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(name))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", tabs[0], tabs[1])
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(user) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + user
}

func (m Model) renderTaskList() string {
	tasks := m.visibleTasks()

	var s strings.Builder
	pending := 0
	for _, t := range tasks {
		if !t.Completed {
			pending++
		}
	}
	s.WriteString(m.theme.Header.Render(fmt.Sprintf("I tuoi Task (%d, %d da fare)", len(tasks), pending)) + "\n\n")

	if len(tasks) == 0 {
		s.WriteString(m.theme.Help.Render("  Nessun task per ora. Premi 'a' per aggiungerne uno."))
		return s.String()
	}

	for i, t := range tasks {
		cursor := "  "
		style := m.theme.TaskItem
		if i == m.taskCursor {
			cursor = "❯ "
			style = m.theme.TaskSelected
		}

		check := "[ ]"
		if t.Completed {
			check = "[x]"
			if i != m.taskCursor {
				style = m.theme.TaskDone
			}
		}

		badge := m.theme.CategoryStyle(t.Category).Render(t.Category.Label())
		line := fmt.Sprintf("%s%s %s  %s  %s", cursor, check, t.Date, truncate(t.Title, 44), badge)
		s.WriteString(style.Render(line) + "\n")
	}

	return s.String()
}

func (m Model) renderCalendar() string {
	grid := calendar.Project(m.editor.Tasks(), m.calYear, m.calMonth, time.Now())

	cellWidth := (m.width - 2) / 7
	if cellWidth < 10 {
		cellWidth = 10
	}
	if cellWidth > 18 {
		cellWidth = 18
	}

	var s strings.Builder
	s.WriteString(m.theme.Header.Render(grid.Title()) + "\n")

	var head strings.Builder
	for _, name := range calendar.WeekdayNames {
		head.WriteString(padRight(name, cellWidth))
	}
	s.WriteString(m.theme.Help.Render(head.String()) + "\n")

	for start := 0; start < len(grid.Cells); start += 7 {
		end := start + 7
		if end > len(grid.Cells) {
			end = len(grid.Cells)
		}
		week := grid.Cells[start:end]

		cells := make([]string, 0, 7)
		for _, c := range week {
			cells = append(cells, m.renderDayCell(c, cellWidth))
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	return s.String()
}

func (m Model) renderDayCell(c calendar.Cell, width int) string {
	inner := width - 2

	if c.Empty() {
		return m.theme.DayCell.Width(width).Render("")
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("%d", c.Day))
	for _, t := range c.VisibleTasks() {
		s.WriteString("\n" + m.theme.CategoryStyle(t.Category).Render(truncate(t.Title, inner)))
	}
	if more := c.MoreLabel(); more != "" {
		s.WriteString("\n" + m.theme.Help.Render(more))
	}

	style := m.theme.DayCell
	if c.Today {
		style = m.theme.DayToday
	}
	return style.Width(width).Render(s.String())
}

func (m Model) renderTaskForm() string {
	var s strings.Builder

	title := "➕ Nuovo Task"
	if m.editor.EditingID() != "" {
		title = "✏️ Modifica Task"
	}
	s.WriteString(m.theme.Header.Render(title) + "\n\n")

	s.WriteString("Titolo\n" + m.formInputs[formFieldTitle].View() + "\n\n")
	s.WriteString("Data\n" + m.formInputs[formFieldDate].View() + "\n\n")

	label := m.editor.Form.Category.Label()
	catLine := "Categoria: " + label
	if m.formFocus == formFieldCategory {
		catLine = "Categoria: ❮ " + m.theme.CategoryStyle(m.editor.Form.Category).Render(label) + " ❯"
	}
	s.WriteString(catLine + "\n")

	if m.message != "" {
		s.WriteString("\n" + m.theme.ErrorText.Render(m.message) + "\n")
	}

	s.WriteString("\n" + m.theme.Help.Render("enter salva · esc annulla"))

	return m.theme.Modal.Render(s.String())
}

func (m Model) renderConfirmDelete() string {
	var title string
	for _, t := range m.visibleTasks() {
		if t.ID == m.deleteID {
			title = t.Title
			break
		}
	}

	body := fmt.Sprintf("Eliminare \"%s\"?\n\n", truncate(title, 40)) +
		m.theme.Help.Render("y conferma · n annulla")
	return m.theme.Modal.Render(body)
}

func (m Model) renderHelp() string {
	rows := []string{
		"tab      cambia scheda (Task / Calendario)",
		"↑/k ↓/j  muovi il cursore",
		"a        nuovo task",
		"e        modifica task",
		"x/enter  completa / riapri",
		"d        elimina",
		"←/h →/l  mese precedente / successivo (Calendario)",
		"t        cambia tema",
		"L        logout",
		"q        esci",
	}
	return m.theme.Modal.Render(m.theme.Header.Render("Aiuto") + "\n\n" + strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	help := "a nuovo · e modifica · x completa · d elimina · tab scheda · ? aiuto · L logout · q esci"
	if m.tab == TabCalendar {
		help = "←/→ mese · tab scheda · t tema · L logout · q esci"
	}
	return m.theme.StatusBar.Width(m.width).Render(help)
}
