package maze

import (
	"errors"
	"fmt"
)

// ErrBuildFailure marks a map build that was abandoned.
var ErrBuildFailure = errors.New("maze: build failed")

// Stage names the step of a build.
type Stage string

const (
	StageConfig  Stage = "config"
	StageProfile Stage = "profile"
	StageBorder  Stage = "border"
	StageGrid    Stage = "grid"
	StageWalls   Stage = "walls"
	StageGoals   Stage = "goals"
)

// BuildError describes an abandoned build.
// errors.Is(err, ErrBuildFailure) holds for every BuildError, and the
// underlying cause stays reachable through errors.Is and errors.As.
type BuildError struct {
	Level int
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("maze: build of level %d failed at %s: %v", e.Level, e.Stage, e.Err)
}

// Unwrap exposes both the sentinel and the cause.
func (e *BuildError) Unwrap() []error {
	return []error{ErrBuildFailure, e.Err}
}
