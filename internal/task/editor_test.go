package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

func newTestEditor(t *testing.T, seed []model.Task, owner string) *Editor {
	t.Helper()
	repo := NewRepository(store.NewMemory())
	if len(seed) > 0 {
		repo.SaveAll(owner, seed)
	}
	return NewEditor(repo, owner)
}

func TestCreateTask(t *testing.T) {
	e := newTestEditor(t, nil, "alice")

	e.Form.Title = "  Comprare il latte  "
	e.Form.Date = "2026-09-10"
	e.Form.Category = model.CategoryPersonal

	require.True(t, e.Submit())

	tasks := e.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Comprare il latte", tasks[0].Title, "title is trimmed")
	assert.Equal(t, "2026-09-10", tasks[0].Date)
	assert.Equal(t, model.CategoryPersonal, tasks[0].Category)
	assert.Equal(t, "alice", tasks[0].Owner)
	assert.False(t, tasks[0].Completed)
	assert.NotEmpty(t, tasks[0].ID)

	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.Form.Title, "form clears after create")
}

func TestCreateBlankTitleIsNoOp(t *testing.T) {
	e := newTestEditor(t, nil, "alice")

	e.Form.Title = "   "
	e.Form.Date = "2026-09-10"

	assert.False(t, e.Submit())
	assert.Empty(t, e.Tasks(), "store unchanged")
	assert.Equal(t, "   ", e.Form.Title, "form keeps its values")
}

func TestEditSubmitReplacesFieldsOnly(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "Vecchio", Date: "2026-01-01", Category: model.CategoryWork, Completed: true, Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	require.True(t, e.BeginEdit("t1"))
	assert.Equal(t, StateEditing, e.State())
	assert.Equal(t, "Vecchio", e.Form.Title, "form preloads from the task")

	e.Form.Title = "Nuovo"
	e.Form.Date = "2026-02-02"
	e.Form.Category = model.CategoryUrgent
	require.True(t, e.Submit())

	tasks := e.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Nuovo", tasks[0].Title)
	assert.Equal(t, "2026-02-02", tasks[0].Date)
	assert.Equal(t, model.CategoryUrgent, tasks[0].Category)
	assert.True(t, tasks[0].Completed, "completed is never touched by an edit")
	assert.Equal(t, "alice", tasks[0].Owner, "owner is never touched by an edit")
	assert.Equal(t, "t1", tasks[0].ID)

	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.EditingID())
}

func TestEditThenCancelIsNoOp(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "Originale", Date: "2026-01-01", Category: model.CategoryWork, Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")
	before := e.Tasks()[0]

	require.True(t, e.BeginEdit("t1"))
	e.Form.Title = "Cambiato"
	e.Form.Date = "2030-12-31"
	e.Cancel()

	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.Form.Title, "form clears on cancel")
	assert.Equal(t, before, e.Tasks()[0], "stored task identical to before the edit")
}

func TestBeginEditUnknownID(t *testing.T) {
	e := newTestEditor(t, nil, "alice")
	assert.False(t, e.BeginEdit("missing"))
	assert.Equal(t, StateIdle, e.State())
}

func TestToggleIsIdempotentPair(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "A", Date: "2026-01-01", Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	e.Toggle("t1")
	assert.True(t, e.Tasks()[0].Completed)

	e.Toggle("t1")
	assert.False(t, e.Tasks()[0].Completed, "toggling twice restores the original value")
}

func TestToggleKeepsEditSession(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "A", Date: "2026-01-01", Owner: "alice"},
		{ID: "t2", Title: "B", Date: "2026-01-02", Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	require.True(t, e.BeginEdit("t1"))
	e.Toggle("t2")

	assert.Equal(t, StateEditing, e.State())
	assert.Equal(t, "t1", e.EditingID())
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "A", Date: "2026-01-01", Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	e.Delete("ghost")
	assert.Len(t, e.Tasks(), 1)
}

func TestDeleteWhileEditingForcesIdle(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "A", Date: "2026-01-01", Owner: "alice"},
		{ID: "t2", Title: "B", Date: "2026-01-02", Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	require.True(t, e.BeginEdit("t1"))
	e.Form.Title = "In corso"

	e.Delete("t1")

	assert.Equal(t, StateIdle, e.State(), "deleting the task under edit returns to idle")
	assert.Empty(t, e.EditingID())
	assert.Empty(t, e.Form.Title, "form clears, no dangling edit reference")
	require.Len(t, e.Tasks(), 1)
	assert.Equal(t, "t2", e.Tasks()[0].ID)
}

func TestDeleteOtherTaskKeepsEditSession(t *testing.T) {
	seed := []model.Task{
		{ID: "t1", Title: "A", Date: "2026-01-01", Owner: "alice"},
		{ID: "t2", Title: "B", Date: "2026-01-02", Owner: "alice"},
	}
	e := newTestEditor(t, seed, "alice")

	require.True(t, e.BeginEdit("t1"))
	e.Delete("t2")

	assert.Equal(t, StateEditing, e.State())
	assert.Equal(t, "t1", e.EditingID())
}

func TestEditorNeverTouchesOtherOwners(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	repo.SaveAll("", []model.Task{
		{ID: "a1", Title: "Alice", Date: "2026-01-01", Owner: "alice"},
		{ID: "b1", Title: "Bob", Date: "2026-01-01", Owner: "bob"},
	})

	e := NewEditor(repo, "alice")
	bobBefore := repo.LoadForOwner("bob")

	e.Form.Title = "Nuova"
	e.Form.Date = "2026-01-03"
	require.True(t, e.Submit())
	e.Toggle("a1")
	e.Delete("a1")

	assert.Equal(t, bobBefore, repo.LoadForOwner("bob"), "bob's record is byte-for-byte unchanged")
	for _, task := range e.Tasks() {
		assert.Equal(t, "alice", task.Owner)
	}
}
