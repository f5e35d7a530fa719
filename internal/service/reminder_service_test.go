package service

import (
	"testing"

	"studyspace_backend/internal/repository"
	"studyspace_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTimeValidation(t *testing.T) {
	svc := NewReminderService(repository.NewMemoryReminderStore())

	invalid := []string{"9:5", "9:05", "09:5", "24:00", "12:60", "0905", "morning", "", "12:345"}
	for _, tm := range invalid {
		assert.ErrorIs(t, svc.Add("alice", tm, "msg"), util.ErrInvalidTime, "time %q", tm)
	}

	valid := []string{"00:00", "09:05", "23:59"}
	for _, tm := range valid {
		assert.NoError(t, svc.Add("alice", tm, "msg"), "time %q", tm)
	}
}

func TestReminderAddAndList(t *testing.T) {
	svc := NewReminderService(repository.NewMemoryReminderStore())

	require.NoError(t, svc.Add("alice", "09:05", "morning review"))
	require.NoError(t, svc.Add("alice", "21:30", "")) // 消息允许为空

	reminders, err := svc.List("alice")
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	// 插入顺序返回，不按时间排序
	assert.Equal(t, "09:05", reminders[0].ReminderTime)
	assert.Equal(t, "morning review", reminders[0].Message)
	assert.Equal(t, "21:30", reminders[1].ReminderTime)
	assert.Equal(t, "", reminders[1].Message)
}

func TestReminderDuplicatesAllowed(t *testing.T) {
	svc := NewReminderService(repository.NewMemoryReminderStore())

	require.NoError(t, svc.Add("alice", "09:05", "same"))
	require.NoError(t, svc.Add("alice", "09:05", "same"))

	reminders, err := svc.List("alice")
	require.NoError(t, err)
	assert.Len(t, reminders, 2)
}

func TestReminderInvalidTimeNotStored(t *testing.T) {
	svc := NewReminderService(repository.NewMemoryReminderStore())

	require.Error(t, svc.Add("alice", "9:5", "msg"))

	reminders, err := svc.List("alice")
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
