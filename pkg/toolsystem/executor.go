package toolsystem

import (
	"context"
	"fmt"
	"time"
)

type CallStatus string

const (
	SUCCESS CallStatus = "success"
	FAILED  CallStatus = "failed"
)

// ToolCall is one invocation requested by the conversation layer.
type ToolCall struct {
	Name            string
	Arguments       map[string]any
	Status          CallStatus
	Result          *ToolResult
	RunningDuration time.Duration
}

type ToolResult struct {
	Response map[string]any
}

type Executor interface {
	Execute(ctx context.Context, reg Registry, call ToolCall) (*ToolCall, *ToolResult, error)
}

type executor struct{}

// Execute implements Executor. Handler panics are converted to failed calls so
// a bad tool never takes the session down.
func (e *executor) Execute(ctx context.Context, reg Registry, call ToolCall) (tc *ToolCall, tr *ToolResult, err error) {
	tool, ok := reg.GetByName(call.Name)
	if !ok {
		return nil, nil, fmt.Errorf("tool %s not found", call.Name)
	}

	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			call.Status = FAILED
			call.Result = &ToolResult{
				Response: map[string]any{"error": fmt.Sprintf("tool panicked: %v", r)},
			}
			call.RunningDuration = time.Since(startTime)
			tc, tr, err = &call, call.Result, fmt.Errorf("tool %s panicked: %v", call.Name, r)
		}
	}()

	res, toolErr := tool.Handler(ctx, call.Arguments)
	runningDuration := time.Since(startTime)

	if toolErr != nil {
		call.Status = FAILED
		call.Result = &ToolResult{
			Response: map[string]any{
				"error": toolErr.Error(),
			},
		}
		call.RunningDuration = runningDuration

		return &call, call.Result, toolErr
	}

	toolResult := ToolResult{
		Response: res,
	}

	call.Status = SUCCESS
	call.Result = &toolResult
	call.RunningDuration = runningDuration

	return &call, &toolResult, nil
}

func NewExecutor() Executor {
	return &executor{}
}
