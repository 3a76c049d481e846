package service

import (
	"errors"
	"time"

	"github.com/runlog-app/runlog/database"
	"github.com/runlog-app/runlog/database/model"
	"github.com/runlog-app/runlog/web/entity"

	"gorm.io/gorm"
)

// ErrNotRunOwner is returned when a user tries to delete a run that
// belongs to someone else. The run is left intact.
var ErrNotRunOwner = errors.New("run belongs to another user")

type RunService struct{}

// AddRun stores a new run for the given user. A zero date defaults to
// the current time.
func (s *RunService) AddRun(userId int, distance, duration float64, date time.Time) (*model.Run, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	run := &model.Run{
		Distance: distance,
		Duration: duration,
		Date:     date,
		UserId:   userId,
	}
	db := database.GetDB()
	if err := db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// GetRunsByUser returns a user's runs, newest first.
func (s *RunService) GetRunsByUser(userId int) ([]*model.Run, error) {
	db := database.GetDB()

	runs := make([]*model.Run, 0)
	err := db.Model(model.Run{}).
		Where("user_id = ?", userId).
		Order("date desc").
		Find(&runs).
		Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *RunService) GetRun(id int) (*model.Run, error) {
	db := database.GetDB()

	run := &model.Run{}
	err := db.Model(model.Run{}).
		Where("id = ?", id).
		First(run).
		Error
	if err != nil {
		return nil, err
	}
	return run, nil
}

// DelRun deletes a run after checking ownership. A missing run yields
// gorm.ErrRecordNotFound, a foreign run ErrNotRunOwner.
func (s *RunService) DelRun(id int, userId int) error {
	run, err := s.GetRun(id)
	if err != nil {
		return err
	}
	if run.UserId != userId {
		return ErrNotRunOwner
	}

	db := database.GetDB()
	result := db.Delete(model.Run{}, "id = ? and user_id = ?", id, userId)
	if result.Error != nil {
		return result.Error
	}
	// A concurrent delete may have won the race.
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetRunOwner resolves the owning user's username through an explicit
// join. Ownership only lives on the users table, never on the run row.
func (s *RunService) GetRunOwner(runId int) (string, error) {
	db := database.GetDB()

	var row struct {
		Username string
	}
	err := db.Model(model.Run{}).
		Select("users.username as username").
		Joins("join users on users.id = runs.user_id").
		Where("runs.id = ?", runId).
		Take(&row).
		Error
	if err != nil {
		return "", err
	}
	return row.Username, nil
}

// Leaderboard computes the best (minimum) duration per user and distance
// across all runs, ordered by ascending distance.
func (s *RunService) Leaderboard() ([]*entity.LeaderboardRow, error) {
	db := database.GetDB()

	rows := make([]*entity.LeaderboardRow, 0)
	err := db.Model(model.Run{}).
		Select("users.username as username, runs.distance as distance, min(runs.duration) as best_time").
		Joins("join users on users.id = runs.user_id").
		Group("users.username, runs.distance").
		Order("runs.distance asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
