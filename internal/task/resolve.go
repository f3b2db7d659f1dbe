package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martalocci/taskdeck/internal/model"
)

var (
	// ErrTaskNotFound is returned when no task matches an id prefix.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousPrefix is returned when an id prefix matches several tasks.
	ErrAmbiguousPrefix = errors.New("ambiguous task id prefix")
)

// ResolvePrefix finds the single task whose id starts with prefix. An exact
// match wins over prefix matches.
func ResolvePrefix(tasks []model.Task, prefix string) (model.Task, error) {
	var matches []model.Task
	for _, t := range tasks {
		if t.ID == prefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguousPrefix, prefix, len(matches))
	}
}
