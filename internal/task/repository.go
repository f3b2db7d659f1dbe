// Package task implements the task data layer: a repository over the shared
// persisted collection, and the editor that drives create/update/toggle/
// delete from UI events.
package task

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/martalocci/taskdeck/internal/logger"
	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

// Repository mediates between callers and the single user_tasks slot. The
// slot holds every owner's tasks in one collection, so every mutation must
// read the full collection, change it, and write the full collection back;
// writing only one owner's subset would silently drop everyone else's tasks.
//
// Storage failure never propagates: reads of an absent or malformed slot
// come back empty, and write errors are logged and absorbed.
type Repository struct {
	store store.Store
}

// NewRepository creates a repository over the given storage backend.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// LoadAll reads every task in the store, across all owners.
func (r *Repository) LoadAll() []model.Task {
	data, err := r.store.Read(store.SlotTasks)
	if err != nil {
		logger.Warn("Failed to read task slot", logger.F("error", err))
		return []model.Task{}
	}
	if len(data) == 0 {
		return []model.Task{}
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		logger.Warn("Malformed task slot, treating as empty", logger.F("error", err))
		return []model.Task{}
	}
	return tasks
}

// LoadForOwner returns the tasks belonging to owner. Ordering is whatever
// the store holds; display ordering is the caller's concern.
func (r *Repository) LoadForOwner(owner string) []model.Task {
	return filterOwner(r.LoadAll(), owner)
}

// SaveAll overwrites the store with the full task sequence (all owners) and
// returns the subsequence belonging to owner so the caller can refresh its
// view immediately.
func (r *Repository) SaveAll(owner string, tasks []model.Task) []model.Task {
	data, err := json.Marshal(tasks)
	if err != nil {
		logger.Error("Failed to serialize tasks", logger.F("error", err))
		return filterOwner(tasks, owner)
	}
	if err := r.store.Write(store.SlotTasks, data); err != nil {
		logger.Error("Failed to write task slot", logger.F("error", err))
	}
	return filterOwner(tasks, owner)
}

// ReplaceOwnerView is SaveAll followed by LoadForOwner.
func (r *Repository) ReplaceOwnerView(owner string, all []model.Task) []model.Task {
	r.SaveAll(owner, all)
	return r.LoadForOwner(owner)
}

// filterOwner keeps the tasks belonging to owner. A blank owner matches
// nothing: tasks always belong to a named user.
func filterOwner(tasks []model.Task, owner string) []model.Task {
	out := []model.Task{}
	if strings.TrimSpace(owner) == "" {
		return out
	}
	for _, t := range tasks {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate orders tasks by date string ascending, keeping insertion order
// for equal dates. Display helper, not a repository guarantee.
func SortByDate(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.Compare(out[i].Date, out[j].Date) < 0
	})
	return out
}
