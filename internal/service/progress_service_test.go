package service

import (
	"testing"

	"studyspace_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressResumeDefault(t *testing.T) {
	svc := NewProgressService(repository.NewMemoryProgressStore())

	progress, notes, err := svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
	assert.Equal(t, "", notes)
}

func TestProgressSaveAndResume(t *testing.T) {
	svc := NewProgressService(repository.NewMemoryProgressStore())

	require.NoError(t, svc.Save("video-1", "alice", 120, "good intro", 600))

	progress, notes, err := svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 120, progress)
	assert.Equal(t, "good intro", notes)
}

func TestProgressSecondSaveWins(t *testing.T) {
	svc := NewProgressService(repository.NewMemoryProgressStore())

	require.NoError(t, svc.Save("video-1", "alice", 120, "first", 600))
	require.NoError(t, svc.Save("video-1", "alice", 300, "second", 600))

	progress, notes, err := svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 300, progress)
	assert.Equal(t, "second", notes)
}

func TestProgressClamping(t *testing.T) {
	svc := NewProgressService(repository.NewMemoryProgressStore())

	// 超过视频时长钳到结尾
	require.NoError(t, svc.Save("video-1", "alice", 10, "", 5))
	progress, _, err := svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, progress)

	// 负数钳到 0
	require.NoError(t, svc.Save("video-1", "alice", -3, "", 5))
	progress, _, err = svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	// 时长未知（0）只做下界钳制
	require.NoError(t, svc.Save("video-2", "alice", 9999, "", 0))
	progress, _, err = svc.Resume("video-2", "alice")
	require.NoError(t, err)
	assert.Equal(t, 9999, progress)
}

func TestProgressIsolatedPerUserAndVideo(t *testing.T) {
	svc := NewProgressService(repository.NewMemoryProgressStore())

	require.NoError(t, svc.Save("video-1", "alice", 100, "alice notes", 600))
	require.NoError(t, svc.Save("video-1", "bob", 200, "bob notes", 600))
	require.NoError(t, svc.Save("video-2", "alice", 50, "", 600))

	progress, notes, err := svc.Resume("video-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 100, progress)
	assert.Equal(t, "alice notes", notes)

	progress, notes, err = svc.Resume("video-1", "bob")
	require.NoError(t, err)
	assert.Equal(t, 200, progress)
	assert.Equal(t, "bob notes", notes)

	progress, _, err = svc.Resume("video-2", "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, progress)
}
