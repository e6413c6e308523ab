//go:build integration_test || all_tests

package integration

import (
	"context"

	"github.com/2beens/gymprogress/internal/db"
	"github.com/2beens/gymprogress/internal/users"
)

func (s *IntegrationTestSuite) TestCloseWeek_KeepsWorkoutsFinishedAfterCount() {
	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: s.pgPort,
		DBName: dbName,
	})
	s.Require().NoError(err)
	defer pool.Close()
	repo := users.NewRepo(pool)

	userID, _ := s.registerAndLogin()
	_, err = s.DB.Exec(`UPDATE gym_user SET weekly_goal = 2, workouts_in_week = 2, streak = 3 WHERE id = $1`, userID)
	s.Require().NoError(err)

	counted, err := repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.Require().Equal(2, counted.WorkoutsInWeek)

	// a workout is finished between the count and the close
	s.Require().NoError(repo.IncrementWorkouts(ctx, userID))
	s.Require().NoError(repo.CloseWeek(ctx, userID, users.NextGoalStreak(*counted), counted.WorkoutsInWeek))

	var streak, workoutsInWeek int
	err = s.DB.QueryRow(`SELECT streak, workouts_in_week FROM gym_user WHERE id = $1`, userID).Scan(&streak, &workoutsInWeek)
	s.Require().NoError(err)
	s.Equal(4, streak)
	s.Equal(1, workoutsInWeek)
}
