package repository

import (
	"testing"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProgressStoreUpsert(t *testing.T) {
	store := NewMemoryProgressStore()

	require.NoError(t, store.Upsert("v1", "alice", 10, "first"))
	require.NoError(t, store.Upsert("v1", "alice", 20, "second"))

	progress, notes, err := store.Get("v1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, progress)
	assert.Equal(t, "second", notes)
}

func TestMemoryTaskStoreReturnsCopy(t *testing.T) {
	store := NewMemoryTaskStore()
	require.NoError(t, store.Append("alice", "original", model.TaskPending))

	tasks, err := store.List("alice")
	require.NoError(t, err)
	tasks[0].Task = "mutated"

	// 调用方改动副本不影响存储内容
	tasks, err = store.List("alice")
	require.NoError(t, err)
	assert.Equal(t, "original", tasks[0].Task)
}

func TestMemoryTaskStoreIDsIncrease(t *testing.T) {
	store := NewMemoryTaskStore()
	require.NoError(t, store.Append("alice", "a", model.TaskPending))
	require.NoError(t, store.Append("bob", "b", model.TaskPending))
	require.NoError(t, store.Append("alice", "c", model.TaskPending))

	tasks, err := store.List("alice")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
}

func TestMemoryTaskStoreMarkDone(t *testing.T) {
	store := NewMemoryTaskStore()
	require.NoError(t, store.Append("alice", "a", model.TaskPending))

	tasks, err := store.List("alice")
	require.NoError(t, err)
	require.NoError(t, store.MarkDone("alice", tasks[0].ID))

	tasks, err = store.List("alice")
	require.NoError(t, err)
	assert.Equal(t, model.TaskDone, tasks[0].Status)

	// 其他用户名下找不到这条任务
	assert.ErrorIs(t, store.MarkDone("bob", tasks[0].ID), util.ErrTaskNotFound)
}

func TestMemoryReminderStoreAppendOnly(t *testing.T) {
	store := NewMemoryReminderStore()
	require.NoError(t, store.Append("alice", "09:05", "first"))
	require.NoError(t, store.Append("alice", "21:30", "second"))

	reminders, err := store.List("alice")
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "first", reminders[0].Message)
	assert.Equal(t, "second", reminders[1].Message)
}
