package mcp

import (
	"context"
	"net/http"

	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/completions"
	"github.com/2beens/gymprogress/internal/programs"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:generate mockgen -source=$GOFILE -destination=server_mocks_test.go -package=mcp_test

type programReader interface {
	TodaysWorkout(ctx context.Context, userID int) (*programs.TodaysWorkout, error)
	ResolveWorkout(ctx context.Context, programID, workoutID string) (*programs.Workout, int, error)
	Validate(ctx context.Context, id string) (programs.Violations, error)
}

type progressReader interface {
	History(ctx context.Context, userID int) (*completions.History, error)
	CompletedVsGoal(ctx context.Context, userID int) (*completions.GoalProgress, error)
}

// New creates the MCP server exposing workout and progress tools. Every tool is
// scoped to the user of the session that reached the endpoint.
func New(programSvc programReader, progress progressReader, version string) *server.MCPServer {
	s := server.NewMCPServer("gymprogress", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("gymprogress training server. Look up today's workout, resolve workouts of a program, and read completion history, streaks and weekly goal progress of the authenticated user."),
	)

	h := &handlers{programs: programSvc, progress: progress}
	s.AddTools(
		server.ServerTool{Tool: toolTodaysWorkout, Handler: h.todaysWorkout},
		server.ServerTool{Tool: toolResolveWorkout, Handler: h.resolveWorkout},
		server.ServerTool{Tool: toolValidateProgram, Handler: h.validateProgram},
		server.ServerTool{Tool: toolWorkoutHistory, Handler: h.workoutHistory},
		server.ServerTool{Tool: toolWeeklyGoal, Handler: h.weeklyGoal},
	)

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP. The user id set on
// the request by the auth middleware is carried into tool calls.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				return auth.WithUserID(ctx, userID)
			}
			return ctx
		}),
	)
}

type handlers struct {
	programs programReader
	progress progressReader
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
