package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

func TestLoginBuiltins(t *testing.T) {
	svc := NewService(store.NewMemory())

	tests := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", model.RoleAdministrator},
		{"user", "user123", model.RoleUser},
		{"demo", "demo", model.RoleGuest},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			u, err := svc.Login(tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username)
			assert.Equal(t, tt.role, u.Role)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(store.NewMemory())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(store.NewMemory())

	u, err := svc.Register("marta", "segreta", model.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "marta", u.Username)
	assert.Equal(t, model.RoleEditor, u.Role)
	assert.NotEqual(t, "segreta", u.PasswordHash, "password is stored hashed")
	assert.False(t, u.CreatedAt.IsZero())

	logged, err := svc.Login("marta", "segreta")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, logged.Role)

	_, err = svc.Login("marta", "sbagliata")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsReservedAndDuplicateNames(t *testing.T) {
	svc := NewService(store.NewMemory())

	for _, reserved := range []string{"admin", "user", "demo"} {
		_, err := svc.Register(reserved, "pw", model.RoleUser)
		assert.ErrorIs(t, err, ErrUsernameTaken, reserved)
	}

	_, err := svc.Register("marta", "pw", model.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register("marta", "altra", model.RoleGuest)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(store.NewMemory())

	_, err := svc.Register("", "pw", model.RoleUser)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register("marta", "", model.RoleUser)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register("marta", "pw", "Superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	// Blank role falls back to User.
	u, err := svc.Register("marta", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role)
}

func TestUsersFailSoft(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Write(store.SlotUsers, []byte("not json")))

	svc := NewService(st)
	assert.Empty(t, svc.Users())

	// A broken slot does not break built-in logins.
	_, err := svc.Login("demo", "demo")
	assert.NoError(t, err)
}

func TestRegisterDoesNotTouchTaskSlot(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Write(store.SlotTasks, []byte(`[{"id":"1","owner":"alice"}]`)))

	svc := NewService(st)
	_, err := svc.Register("marta", "pw", model.RoleUser)
	require.NoError(t, err)

	data, err := st.Read(store.SlotTasks)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","owner":"alice"}]`, string(data))
}
