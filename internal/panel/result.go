package panel

// Outcome classifies how a panel operation ended.
type Outcome string

const (
	OK Outcome = "ok"
	// Blocked means client-side validation stopped the operation before any call.
	Blocked Outcome = "blocked"
	// Declined means a delete was not confirmed.
	Declined Outcome = "declined"
	// Failed means the backend call or the session store failed.
	Failed Outcome = "failed"
)

type Result struct {
	Outcome Outcome
	// Alert is the message shown to the user, set for blocked operations.
	Alert string
	Err   error
}

func Done() Result {
	return Result{Outcome: OK}
}

func Block(alert string, err error) Result {
	return Result{Outcome: Blocked, Alert: alert, Err: err}
}

func Decline() Result {
	return Result{Outcome: Declined}
}

func Fail(err error) Result {
	return Result{Outcome: Failed, Err: err}
}

func (r Result) Succeeded() bool {
	return r.Outcome == OK
}
