package mcp

import (
	"context"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/completions"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
)

var toolTodaysWorkout = mcp.NewTool("todays_workout",
	mcp.WithDescription("Today's scheduled workout of the user: program, week number, and the stations with their sets."),
)

var toolResolveWorkout = mcp.NewTool("resolve_workout",
	mcp.WithDescription("Find a workout of a program by its id. Returns the workout and the number of the week it belongs to."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program id")),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout id")),
)

var toolValidateProgram = mcp.NewTool("validate_program",
	mcp.WithDescription("Check a program for structural problems, e.g. stations without sets or a station count that differs from numberOfStations."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program id")),
)

var toolWorkoutHistory = mcp.NewTool("workout_history",
	mcp.WithDescription("Completed workouts of the user with the consecutive-week streak."),
	mcp.WithNumber("limit", mcp.Description("Return only the most recent N completions. Defaults to all.")),
)

var toolWeeklyGoal = mcp.NewTool("weekly_goal",
	mcp.WithDescription("Workouts completed in the current ISO week against the user's weekly goal."),
)

func (h *handlers) todaysWorkout(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("not authenticated"), nil
	}

	today, err := h.programs.TodaysWorkout(ctx, userID)
	if err != nil {
		return failure("todays_workout", err), nil
	}
	return jsonResult(today)
}

func (h *handlers) resolveWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programID, err := req.RequireString("program_id")
	if err != nil {
		return mcp.NewToolResultError("program_id parameter is required"), nil
	}
	workoutID, err := req.RequireString("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}

	workout, weekNumber, err := h.programs.ResolveWorkout(ctx, programID, workoutID)
	if err != nil {
		return failure("resolve_workout", err), nil
	}
	return jsonResult(map[string]any{
		"programId":  programID,
		"weekNumber": weekNumber,
		"workout":    workout,
	})
}

func (h *handlers) validateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programID, err := req.RequireString("program_id")
	if err != nil {
		return mcp.NewToolResultError("program_id parameter is required"), nil
	}

	violations, err := h.programs.Validate(ctx, programID)
	if err != nil {
		return failure("validate_program", err), nil
	}
	return jsonResult(violations)
}

func (h *handlers) workoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("not authenticated"), nil
	}

	history, err := h.progress.History(ctx, userID)
	if err != nil {
		return failure("workout_history", err), nil
	}

	if limit := req.GetInt("limit", 0); limit > 0 && limit < len(history.Entries) {
		trimmed := *history
		trimmed.Entries = history.Entries[len(history.Entries)-limit:]
		history = &trimmed
	}
	if history.Entries == nil {
		history.Entries = []completions.LogEntry{}
	}
	return jsonResult(history)
}

func (h *handlers) weeklyGoal(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("not authenticated"), nil
	}

	progress, err := h.progress.CompletedVsGoal(ctx, userID)
	if err != nil {
		return failure("weekly_goal", err), nil
	}
	return jsonResult(progress)
}

// failure turns err into a tool error result carrying the failure kind.
func failure(tool string, err error) *mcp.CallToolResult {
	res := apperr.AsResult(err)
	if res.Kind == apperr.KindInternal {
		log.Errorf("mcp %s: %s", tool, err)
	}
	return mcp.NewToolResultErrorf("%s: %s", res.Kind, res.Message)
}
