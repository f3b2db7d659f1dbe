package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/martalocci/taskdeck/internal/logger"
	"github.com/martalocci/taskdeck/internal/model"
)

// State is the editor's edit-session state.
type State int

const (
	// StateIdle means no task is selected for editing; Submit creates.
	StateIdle State = iota
	// StateEditing means Submit replaces the task selected by BeginEdit.
	StateEditing
)

// Form holds the transient input fields backing the task form.
type Form struct {
	Title    string
	Date     string
	Category model.Category
}

// Editor drives task mutations for one owner. It owns the edit-session
// state machine (Idle or Editing a specific task) and the form fields, and
// persists every mutation through the repository. The in-memory view is
// disposable; it is recomputed from the store after each mutation.
type Editor struct {
	repo  *Repository
	owner string

	state     State
	editingID string
	Form      Form

	view []model.Task
}

// NewEditor creates an editor for owner and loads its initial view.
func NewEditor(repo *Repository, owner string) *Editor {
	e := &Editor{repo: repo, owner: owner}
	e.resetForm()
	e.view = repo.LoadForOwner(owner)
	return e
}

// Owner returns the owner this editor is bound to.
func (e *Editor) Owner() string { return e.owner }

// State returns the current edit-session state.
func (e *Editor) State() State { return e.state }

// EditingID returns the id of the task under edit, or "" when idle.
func (e *Editor) EditingID() string { return e.editingID }

// Tasks returns the owner's current view of the store.
func (e *Editor) Tasks() []model.Task { return e.view }

// Submit applies the form: in Idle it creates a new task, in Editing it
// replaces title, date and category of the task under edit (completed and
// owner are untouched). A blank title after trimming is a silent no-op and
// the form keeps its values. Returns true if a mutation was persisted.
func (e *Editor) Submit() bool {
	title := strings.TrimSpace(e.Form.Title)
	if title == "" {
		return false
	}

	all := e.repo.LoadAll()

	if e.state == StateEditing {
		for i := range all {
			if all[i].ID == e.editingID {
				all[i].Title = title
				all[i].Date = e.Form.Date
				all[i].Category = e.Form.Category
				break
			}
		}
		logger.Debug("Task updated", logger.F("id", e.editingID), logger.F("owner", e.owner))
		e.state = StateIdle
		e.editingID = ""
	} else {
		t := model.NewTask(uuid.New().String(), e.owner, title, e.Form.Date, e.Form.Category)
		all = append(all, t)
		logger.Debug("Task created", logger.F("id", t.ID), logger.F("owner", e.owner))
	}

	e.view = e.repo.SaveAll(e.owner, all)
	e.resetForm()
	return true
}

// BeginEdit selects one of the owner's tasks for editing and preloads the
// form from it. Returns false if the id is not in the owner's view.
func (e *Editor) BeginEdit(id string) bool {
	for _, t := range e.view {
		if t.ID == id {
			e.state = StateEditing
			e.editingID = id
			e.Form = Form{Title: t.Title, Date: t.Date, Category: t.Category}
			return true
		}
	}
	return false
}

// Cancel discards form changes and returns to Idle.
func (e *Editor) Cancel() {
	e.state = StateIdle
	e.editingID = ""
	e.resetForm()
}

// Toggle flips the completed flag of the matching task and persists. The
// edit session, if any, is unaffected.
func (e *Editor) Toggle(id string) {
	all := e.repo.LoadAll()
	for i := range all {
		if all[i].ID == id {
			all[i].Completed = !all[i].Completed
			break
		}
	}
	e.view = e.repo.SaveAll(e.owner, all)
}

// Delete removes the matching task and persists. Deleting a task that does
// not exist is a no-op. Deleting the task currently under edit forces the
// session back to Idle so no dangling edit reference survives.
func (e *Editor) Delete(id string) {
	all := e.repo.LoadAll()
	kept := all[:0]
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if e.state == StateEditing && e.editingID == id {
		e.state = StateIdle
		e.editingID = ""
		e.resetForm()
	}

	e.view = e.repo.SaveAll(e.owner, kept)
}

// Refresh recomputes the owner's view from the store.
func (e *Editor) Refresh() {
	e.view = e.repo.LoadForOwner(e.owner)
}

func (e *Editor) resetForm() {
	e.Form = Form{
		Date:     time.Now().Format(model.DateFormat),
		Category: model.CategoryWork,
	}
}
