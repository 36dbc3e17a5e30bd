package step

import (
	"errors"
	"fmt"

	"github.com/celconex/master-build/delegate"
)

// Stage ...
type Stage string

// Pipeline stages, in execution order.
const (
	StageConfiguration    Stage = "configuration"
	StagePreBuildChecks   Stage = "pre-build checks"
	StageEnvironmentSetup Stage = "environment setup"
	StageDeepClean        Stage = "deep clean"
	StageBuild            Stage = "build"
	StageSubmit           Stage = "store submission"
	StageReport           Stage = "report"
)

// FailureKind classifies why a stage stopped the pipeline.
type FailureKind string

const (
	KindConfiguration        FailureKind = "CONFIGURATION"
	KindMissingCollaborator  FailureKind = "MISSING_COLLABORATOR"
	KindDelegateFailed       FailureKind = "DELEGATE_FAILED"
	KindPlatformPrecondition FailureKind = "PLATFORM_PRECONDITION"
	KindInternal             FailureKind = "INTERNAL"
)

// StageError is returned by Run for the first stage that failed.
type StageError struct {
	Stage Stage
	Kind  FailureKind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Kind: classify(err), Err: err}
}

func classify(err error) FailureKind {
	var exitErr *delegate.ExitError
	switch {
	case errors.Is(err, delegate.ErrAbsent):
		return KindMissingCollaborator
	case errors.Is(err, delegate.ErrUnsupportedHost):
		return KindPlatformPrecondition
	case errors.As(err, &exitErr):
		return KindDelegateFailed
	default:
		return KindInternal
	}
}
