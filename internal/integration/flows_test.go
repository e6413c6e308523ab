//go:build integration_test || all_tests

package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/completions"
	"github.com/2beens/gymprogress/internal/programs"
	"github.com/2beens/gymprogress/internal/scheduler"
	"github.com/2beens/gymprogress/internal/tabs"
	"github.com/2beens/gymprogress/internal/users"
)

func (s *IntegrationTestSuite) TestAuthFlow() {
	userID, token := s.registerAndLogin()

	status, body := s.asUser("GET", "/me", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var me users.User
	s.decode(body, &me)
	s.Equal(userID, me.ID)
	s.Equal(0, me.Streak)

	status, _ = s.asUser("GET", "/me", "not-a-token", nil)
	s.Equal(http.StatusUnauthorized, status)

	status, body = s.asUser("GET", "/a/logout", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var logout auth.LogoutResponse
	s.decode(body, &logout)
	s.True(logout.LoggedOut)

	status, _ = s.asUser("GET", "/me", token, nil)
	s.Equal(http.StatusUnauthorized, status)

	// wrong password
	status, _ = s.doRequest("POST", "/a/login", nil, credentials{Email: me.Email, Password: "nope"})
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestAdminRequiresSecret() {
	_, token := s.registerAndLogin()

	status, _ := s.asUser("POST", "/admin/programs", token, programs.NewProgramParams{Title: "nope"})
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest("POST", "/admin/programs", map[string]string{"X-ADMIN-SECRET": "wrong"}, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutProgressFlow() {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// admin builds and activates a program with a workout dated today
	status, body := s.asAdmin("POST", "/admin/programs", programs.NewProgramParams{
		Title:     "Integration Strength",
		StartDate: today.AddDate(0, 0, -1),
		EndDate:   today.AddDate(0, 0, 27),
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var program programs.Program
	s.decode(body, &program)
	s.Require().Len(program.Weeks, programs.DefaultWeeksCount)

	status, body = s.asAdmin("POST", fmt.Sprintf("/admin/programs/%s/weeks/1/workouts", program.ID), programs.Workout{
		Name:             "Push Day",
		Image:            "push.png",
		NumberOfStations: 2,
		Date:             &today,
		Stations: []programs.Station{
			{ExerciseName: "Bench Press", Sets: []programs.Set{{Lbs: 135, Reps: 10}, {Lbs: 155, Reps: 8}}},
			{ExerciseName: "Overhead Press", Sets: []programs.Set{{Lbs: 95, Reps: 8}}},
		},
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var workout programs.Workout
	s.decode(body, &workout)
	s.Require().NotEmpty(workout.ID)
	s.Require().Len(workout.Stations, 2)
	s.NotEmpty(workout.Stations[0].ID)
	s.NotEmpty(workout.Stations[0].Sets[0].ID)

	// a station beyond the declared count is rejected
	status, body = s.asAdmin("POST", fmt.Sprintf("/admin/programs/%s/weeks/1/workouts/%s/stations", program.ID, workout.ID), programs.Station{
		ExerciseName: "Dips",
		Sets:         []programs.Set{{Reps: 12}},
	})
	s.Equal(http.StatusBadRequest, status, string(body))
	s.Contains(string(body), `"kind":"validation"`)

	status, body = s.asAdmin("POST", fmt.Sprintf("/admin/programs/%s/activate", program.ID), nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	userID, token := s.registerAndLogin()

	// today's workout resolves from the active program
	status, body = s.asUser("GET", "/workouts/today", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var todays programs.TodaysWorkout
	s.decode(body, &todays)
	s.Equal(program.ID, todays.ProgramID)
	s.Equal(1, todays.WeekNumber)
	s.Equal(workout.ID, todays.Workout.ID)

	status, body = s.asUser("GET", fmt.Sprintf("/programs/%s/workouts/%s", program.ID, workout.ID), token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	status, body = s.asUser("GET", fmt.Sprintf("/programs/%s/workouts/%s", program.ID, "missing"), token, nil)
	s.Equal(http.StatusNotFound, status, string(body))
	s.Contains(string(body), `"kind":"not_found"`)

	// finish it
	status, body = s.asUser("POST", "/workouts/finish", token, completions.FinishWorkoutRequest{
		ProgramID: program.ID,
		WorkoutID: workout.ID,
	})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var entry completions.LogEntry
	s.decode(body, &entry)
	s.Equal(userID, entry.UserID)
	s.Equal(1, entry.WeekNumber)
	s.Len(entry.Stations, 2)
	s.True(entry.Completed)

	status, body = s.asUser("GET", "/completions", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var history completions.History
	s.decode(body, &history)
	s.Require().Len(history.Entries, 1)
	s.Equal(1, history.Streak.Streak)
	s.Equal([]string{entry.CompletedAt.UTC().Format("02-01-2006")}, history.Streak.Dates)

	// weekly goal
	status, body = s.asUser("PUT", "/goal", token, completions.WeeklyGoalRequest{WeeklyWorkOutGoal: 0})
	s.Equal(http.StatusBadRequest, status, string(body))

	status, body = s.asUser("PUT", "/goal", token, completions.WeeklyGoalRequest{WeeklyWorkOutGoal: 1})
	s.Require().Equal(http.StatusOK, status, string(body))

	status, body = s.asUser("GET", "/goal", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var progress completions.GoalProgress
	s.decode(body, &progress)
	s.Equal(1, progress.Completed)
	s.Equal(1, progress.Goal)
	s.True(progress.Met)

	status, body = s.asUser("GET", "/completions/export", token, nil)
	s.Require().Equal(http.StatusOK, status)
	// xlsx is a zip container
	s.True(bytes.HasPrefix(body, []byte("PK")))

	// tab pairing selects a station of today's workout
	tabPassword := "tab-secret"
	status, body = s.asAdmin("POST", "/admin/tabs", tabs.NewTabRequest{TabNumber: 2, Password: tabPassword})
	s.Require().Equal(http.StatusCreated, status, string(body))

	status, _ = s.asUser("POST", "/tabs/2/pair", token, tabs.PairRequest{Password: "wrong"})
	s.NotEqual(http.StatusOK, status)

	status, body = s.asUser("POST", "/tabs/2/pair", token, tabs.PairRequest{Password: tabPassword})
	s.Require().Equal(http.StatusOK, status, string(body))

	status, body = s.asUser("GET", "/tabs/2/station", token, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var tabStation tabs.TabStation
	s.decode(body, &tabStation)
	s.Equal(userID, tabStation.UserID)
	s.Equal(workout.ID, tabStation.WorkoutID)
	s.Equal("Overhead Press", tabStation.Station.ExerciseName)

	// manual sweep moves the goal-based streak and resets the weekly counter
	status, body = s.asAdmin("POST", "/admin/sweep", nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var run scheduler.RunResponse
	s.decode(body, &run)
	s.Equal(users.StreakSweepJobName, run.Job)

	var streak, workoutsInWeek, totalWorkouts int
	err := s.DB.QueryRow(
		`SELECT streak, workouts_in_week, total_workouts FROM gym_user WHERE id = $1`, userID,
	).Scan(&streak, &workoutsInWeek, &totalWorkouts)
	s.Require().NoError(err)
	s.Equal(1, streak)
	s.Equal(0, workoutsInWeek)
	s.Equal(1, totalWorkouts)

	var logged int
	s.Require().NoError(s.DB.QueryRow(`SELECT COUNT(*) FROM completion_log WHERE user_id = $1`, userID).Scan(&logged))
	s.Equal(1, logged)

	status, body = s.asAdmin("GET", "/admin/jobs", nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.True(strings.Contains(string(body), users.StreakSweepJobName))
}
