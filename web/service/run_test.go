package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/runlog-app/runlog/database"
	"github.com/runlog-app/runlog/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	userService := UserService{}
	user, err := userService.Register(username, username+"@x.com", "pw1")
	require.NoError(t, err)
	return user
}

func TestAddAndListRuns(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}
	alice := registerTestUser(t, "alice")

	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	_, err := runService.AddRun(alice.Id, 5000, 25.5, older)
	require.NoError(t, err)
	_, err = runService.AddRun(alice.Id, 10000, 55, newer)
	require.NoError(t, err)

	runs, err := runService.GetRunsByUser(alice.Id)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.WithinDuration(t, newer, runs[0].Date, time.Second, "runs must be ordered newest first")
	assert.WithinDuration(t, older, runs[1].Date, time.Second)
}

func TestAddRunDefaultsDate(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}
	alice := registerTestUser(t, "alice")

	run, err := runService.AddRun(alice.Id, 5000, 25.5, time.Time{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), run.Date, time.Minute, "zero date must default to now")
}

func TestGetRunNotFound(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}

	_, err := runService.GetRun(9999)
	assert.True(t, database.IsNotFound(err))
}

func TestDelRunOwnership(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}
	alice := registerTestUser(t, "alice")
	bob := registerTestUser(t, "bob")

	run, err := runService.AddRun(alice.Id, 5000, 25.5, time.Time{})
	require.NoError(t, err)

	err = runService.DelRun(run.Id, bob.Id)
	assert.ErrorIs(t, err, ErrNotRunOwner)

	// The run must be left intact after the rejected delete.
	_, err = runService.GetRun(run.Id)
	require.NoError(t, err)

	require.NoError(t, runService.DelRun(run.Id, alice.Id))
	_, err = runService.GetRun(run.Id)
	assert.True(t, database.IsNotFound(err))

	err = runService.DelRun(run.Id, alice.Id)
	assert.True(t, database.IsNotFound(err), "deleting twice must report not found")
}

func TestGetRunOwner(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}
	alice := registerTestUser(t, "alice")

	run, err := runService.AddRun(alice.Id, 5000, 25.5, time.Time{})
	require.NoError(t, err)

	username, err := runService.GetRunOwner(run.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = runService.GetRunOwner(9999)
	assert.Error(t, err)
}

func TestLeaderboard(t *testing.T) {
	setUpTestDB(t)
	runService := RunService{}
	alice := registerTestUser(t, "alice")
	bob := registerTestUser(t, "bob")

	for _, run := range []struct {
		userId   int
		distance float64
		duration float64
	}{
		{alice.Id, 5000, 26},
		{alice.Id, 5000, 25.5},
		{bob.Id, 5000, 24},
		{alice.Id, 10000, 55},
	} {
		_, err := runService.AddRun(run.userId, run.distance, run.duration, time.Time{})
		require.NoError(t, err)
	}

	rows, err := runService.Leaderboard()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Rows are ordered by ascending distance.
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Distance, rows[i].Distance)
	}

	best := make(map[string]float64, len(rows))
	for _, row := range rows {
		best[fmt.Sprintf("%s/%v", row.Username, row.Distance)] = row.BestTime
	}
	assert.InDelta(t, 25.5, best["alice/5000"], 1e-9, "best time is the minimum duration")
	assert.InDelta(t, 24, best["bob/5000"], 1e-9)
	assert.InDelta(t, 55, best["alice/10000"], 1e-9)
}
