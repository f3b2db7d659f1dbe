package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

func seedTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "A", Date: "2024-03-01", Category: model.CategoryWork, Owner: "alice"},
		{ID: "2", Title: "B", Date: "2024-03-02", Category: model.CategoryPersonal, Owner: "bob"},
		{ID: "3", Title: "C", Date: "2024-03-01", Category: model.CategoryUrgent, Owner: "alice", Completed: true},
	}
}

func TestLoadAllEmptyStore(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	assert.Empty(t, repo.LoadAll())
}

func TestLoadAllMalformedSlot(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Write(store.SlotTasks, []byte("{not json")))

	repo := NewRepository(st)
	assert.Empty(t, repo.LoadAll(), "malformed slot reads as empty, never errors")
}

func TestSaveAllRoundTrip(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	seed := seedTasks()

	view := repo.SaveAll("alice", seed)
	require.Len(t, view, 2)
	assert.Equal(t, "1", view[0].ID)
	assert.Equal(t, "3", view[1].ID)

	assert.Equal(t, seed, repo.LoadAll())
	assert.Equal(t, view, repo.LoadForOwner("alice"))
}

func TestOwnerIsolation(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	repo.SaveAll("alice", seedTasks())

	for _, task := range repo.LoadForOwner("alice") {
		assert.Equal(t, "alice", task.Owner)
	}

	bob := repo.LoadForOwner("bob")
	require.Len(t, bob, 1)
	assert.Equal(t, "2", bob[0].ID)

	assert.Empty(t, repo.LoadForOwner("carol"))
}

func TestMutationPreservesOtherOwners(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	repo.SaveAll("alice", seedTasks())

	before := repo.LoadForOwner("bob")

	// Full read-modify-write on alice's behalf: drop one of her tasks.
	all := repo.LoadAll()
	kept := all[:0]
	for _, task := range all {
		if task.ID != "1" {
			kept = append(kept, task)
		}
	}
	repo.SaveAll("alice", kept)

	assert.Equal(t, before, repo.LoadForOwner("bob"), "bob's tasks must be untouched")
	assert.Len(t, repo.LoadForOwner("alice"), 1)
}

func TestReplaceOwnerView(t *testing.T) {
	repo := NewRepository(store.NewMemory())

	view := repo.ReplaceOwnerView("bob", seedTasks())
	require.Len(t, view, 1)
	assert.Equal(t, "B", view[0].Title)
	assert.Len(t, repo.LoadAll(), 3)
}

func TestSortByDate(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Date: "2024-03-05"},
		{ID: "2", Date: "2024-03-01"},
		{ID: "3", Date: "2024-03-05"},
		{ID: "4", Date: "2024-02-28"},
	}

	sorted := SortByDate(tasks)

	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}
	// Stable: equal dates keep insertion order.
	assert.Equal(t, []string{"4", "2", "1", "3"}, ids)

	// Input order untouched.
	assert.Equal(t, "1", tasks[0].ID)
}

func TestResolvePrefix(t *testing.T) {
	tasks := []model.Task{
		{ID: "abc123", Title: "uno"},
		{ID: "abd456", Title: "due"},
		{ID: "xyz789", Title: "tre"},
	}

	got, err := ResolvePrefix(tasks, "xyz")
	require.NoError(t, err)
	assert.Equal(t, "tre", got.Title)

	_, err = ResolvePrefix(tasks, "ab")
	assert.ErrorIs(t, err, ErrAmbiguousPrefix)

	_, err = ResolvePrefix(tasks, "zz")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	got, err = ResolvePrefix(tasks, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "uno", got.Title)
}
