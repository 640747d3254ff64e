package core

import "errors"

// PreconditionError reports a stage invoked before its dependency was
// produced. It is recoverable: the caller re-runs the stages in order.
type PreconditionError struct {
	Stage   string
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// IsPrecondition reports whether err is a stage-ordering violation.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// Fixed precondition messages, one per stage dependency.
const (
	msgVRDNotSet          = "VRD not set"
	msgScriptNotGenerated = "Script not generated"
	msgShotsNotGenerated  = "Shot list not generated"
)
