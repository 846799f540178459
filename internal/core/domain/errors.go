package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when the build tool executable cannot be located on the search path.
	ErrToolNotFound = zerr.New("build tool not found")

	// ErrSpawnFailed is returned when the build tool was found but the process could not be started.
	ErrSpawnFailed = zerr.New("failed to start build tool")

	// ErrInvalidDefinition is returned when an unpopulated build definition is handed to the invoker.
	ErrInvalidDefinition = zerr.New("invalid build definition")

	// ErrEmptyTarget is returned when a build definition is created without a target.
	ErrEmptyTarget = zerr.New("build target must not be empty")

	// ErrEmptyProfile is returned when a build definition is created without a profile.
	ErrEmptyProfile = zerr.New("build profile must not be empty")

	// ErrEmptyTool is returned when no build tool name is configured.
	ErrEmptyTool = zerr.New("build tool must not be empty")

	// ErrBuildFailed is returned by callers that escalate a nonzero tool exit to a failure.
	ErrBuildFailed = zerr.New("build failed")
)
