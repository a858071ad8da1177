package response

// Action tells the runloop what to do after a plugin handler returns.
type Action int

const (
	// ActionContinue proceeds to the next plugin or phase.
	ActionContinue Action = iota

	// ActionTerminate stops the request: the response has been emitted and
	// no further handler logic may run.
	ActionTerminate

	// ActionSuspend abandons the calling handler. The runloop keeps running
	// the remaining handlers of the phase and later invokes Result.Resume.
	ActionSuspend
)

// String returns a lowercase name of the action, used in logs.
func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionTerminate:
		return "terminate"
	case ActionSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}

// Continuation resumes a suspended exit. For deferred exits it is
// [Response.Flush].
type Continuation func() (Result, error)

// Result is the outcome of a plugin handler or of a terminal PDK call.
type Result struct {
	Action Action

	// Resume is set only when Action is ActionSuspend.
	Resume Continuation
}

// Continue is the zero-cost result for handlers that let the request proceed.
var Continue = Result{Action: ActionContinue}

// Terminated reports whether r ends the request.
func (r Result) Terminated() bool {
	return r.Action == ActionTerminate
}

// Suspended reports whether r carries a continuation to be resumed later.
func (r Result) Suspended() bool {
	return r.Action == ActionSuspend && r.Resume != nil
}
