package cli

import (
	"errors"

	"github.com/martalocci/taskdeck/internal/auth"
	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

// ErrNotLoggedIn is returned by commands that need an active session.
var ErrNotLoggedIn = errors.New("not logged in; run 'taskdeck login' first")

func openStore() (*store.SQLite, error) {
	return store.OpenDefault()
}

// requireSession loads the persisted session, failing when nobody is
// logged in.
func requireSession() (model.Session, error) {
	s := auth.LoadSession()
	if !s.Active() {
		return model.Session{}, ErrNotLoggedIn
	}
	return s, nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
