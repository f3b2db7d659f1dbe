package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAbsentSlot(t *testing.T) {
	m := NewMemory()

	data, err := m.Read("nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryWriteRead(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write(SlotTasks, []byte(`[{"id":"1"}]`)))

	data, err := m.Read(SlotTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestMemoryReadReturnsCopy(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Write(SlotTasks, []byte("abc")))

	data, err := m.Read(SlotTasks)
	require.NoError(t, err)
	data[0] = 'x'

	again, err := m.Read(SlotTasks)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Read(SlotTasks)
	require.NoError(t, err)
	assert.Nil(t, data, "unwritten slot reads as nil")

	require.NoError(t, s.Write(SlotTasks, []byte(`[]`)))
	require.NoError(t, s.Write(SlotTasks, []byte(`[{"id":"1"}]`)))

	data, err = s.Read(SlotTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestSQLiteSlotsAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(SlotTasks, []byte("tasks")))
	require.NoError(t, s.Write(SlotUsers, []byte("users")))

	tasks, err := s.Read(SlotTasks)
	require.NoError(t, err)
	users, err := s.Read(SlotUsers)
	require.NoError(t, err)

	assert.Equal(t, "tasks", string(tasks))
	assert.Equal(t, "users", string(users))
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(SlotUsers, []byte(`[{"username":"marta"}]`)))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	data, err := s2.Read(SlotUsers)
	require.NoError(t, err)
	assert.Equal(t, `[{"username":"marta"}]`, string(data))
}
