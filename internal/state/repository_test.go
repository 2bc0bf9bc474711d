package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T, path string) *Repository {
	t.Helper()
	repo, err := NewRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestEmptyRepositoryReportsAbsent(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "stopwatch.db"))

	counting, err := repo.Counting()
	require.NoError(t, err)
	assert.False(t, counting)

	start, err := repo.StartTime()
	require.NoError(t, err)
	assert.Nil(t, start)

	stop, err := repo.StopTime()
	require.NoError(t, err)
	assert.Nil(t, stop)
}

func TestInstantsKeepSubSecondPrecision(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "stopwatch.db"))

	start := time.Date(2024, 5, 8, 9, 30, 15, 123456789, time.FixedZone("WEST", 3600))
	require.NoError(t, repo.SetStartTime(&start))

	got, err := repo.StartTime()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(start))

	later := start.Add(250 * time.Millisecond)
	require.NoError(t, repo.SetStartTime(&later))
	got, err = repo.StartTime()
	require.NoError(t, err)
	assert.True(t, got.Equal(later))
}

func TestNilInstantDeletes(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "stopwatch.db"))

	stop := time.Now()
	require.NoError(t, repo.SetStopTime(&stop))
	require.NoError(t, repo.SetStopTime(nil))

	got, err := repo.StopTime()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.SetStopTime(nil), "deleting an absent key is fine")
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwatch.db")
	start := time.Date(2024, 5, 8, 9, 30, 0, 500000000, time.UTC)
	stop := start.Add(42 * time.Second)

	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetCounting(true))
	require.NoError(t, repo.SetStartTime(&start))
	require.NoError(t, repo.SetStopTime(&stop))
	require.NoError(t, repo.Close())

	reopened := openRepo(t, path)
	counting, err := reopened.Counting()
	require.NoError(t, err)
	assert.True(t, counting)

	gotStart, err := reopened.StartTime()
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start))

	gotStop, err := reopened.StopTime()
	require.NoError(t, err)
	assert.True(t, gotStop.Equal(stop))

	require.NoError(t, reopened.SetCounting(false))
	counting, err = reopened.Counting()
	require.NoError(t, err)
	assert.False(t, counting)
}

func TestCorruptValueIsAnError(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "stopwatch.db"))

	require.NoError(t, repo.set(StartTimeKey, "yesterday"))
	_, err := repo.StartTime()
	assert.Error(t, err)

	require.NoError(t, repo.set(CountingKey, "maybe"))
	_, err = repo.Counting()
	assert.Error(t, err)
}
