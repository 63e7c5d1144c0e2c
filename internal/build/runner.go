// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bitfield/script"
)

// Executor runs a single target command and returns its combined output.
type Executor interface {
	Exec(ctx context.Context, command string) (string, error)
}

// ScriptExecutor executes commands using bitfield/script.
type ScriptExecutor struct{}

// Exec runs command and waits for it to finish.
func (ScriptExecutor) Exec(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := script.Exec(command)
	output, err := p.String()
	if err != nil {
		return output, fmt.Errorf("shell command failed: %w", err)
	}
	return output, nil
}

// Runner executes targets in dependency order.
type Runner struct {
	Scheduler *Scheduler
	Executor  Executor
	Out       io.Writer
	Logger    *slog.Logger
}

// NewRunner creates a runner that executes commands with script and
// copies their output to out.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Scheduler: &Scheduler{},
		Executor:  ScriptExecutor{},
		Out:       out,
		Logger:    logger,
	}
}

// Run builds goals and their dependencies. It returns the partial result
// together with the error when a target fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, targets []Target, goals []string) (*Result, error) {
	if err := r.Scheduler.Validate(targets); err != nil {
		return nil, err
	}

	selected, err := r.Scheduler.Select(targets, goals)
	if err != nil {
		return nil, err
	}

	order, err := r.Scheduler.BuildExecutionOrder(selected)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("Target schedule", "goals", goals, "order", order)

	state := NewState(selected, order)
	result := &Result{Order: order}

	for _, name := range state.FlatOrder {
		if err := ctx.Err(); err != nil {
			r.Logger.Warn("Build cancelled", "next", name)
			return result, fmt.Errorf("build cancelled before %s: %w", name, err)
		}

		if err := r.runTarget(ctx, state.TargetMap[name]); err != nil {
			result.Failed = name
			return result, err
		}

		result.Completed = append(result.Completed, name)
	}

	r.Logger.Info("Build complete", "targets", len(result.Completed))
	return result, nil
}

func (r *Runner) runTarget(ctx context.Context, t Target) error {
	if t.Command == "" {
		r.Logger.Debug("Aggregate target done", "name", t.Name)
		return nil
	}

	r.Logger.Info("Starting target", "name", t.Name, "cmd", t.Command)
	output, err := r.Executor.Exec(ctx, t.Command)
	if r.Out != nil && output != "" {
		if _, werr := io.WriteString(r.Out, output); werr != nil {
			return fmt.Errorf("target %s: failed to copy output: %w", t.Name, werr)
		}
	}
	if err != nil {
		r.Logger.Error("Target failed", "name", t.Name, "error", err)
		return fmt.Errorf("target %s: %w", t.Name, err)
	}

	r.Logger.Debug("Target completed", "name", t.Name)
	return nil
}
