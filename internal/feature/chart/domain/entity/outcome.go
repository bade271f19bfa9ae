package entity

// OutcomeKind is the terminal state reached by one fetch cycle.
type OutcomeKind string

const (
	// OutcomeRejected means a date field was empty and no request was made.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomePopulated means the chart was rendered with data.
	OutcomePopulated OutcomeKind = "populated"
	// OutcomeNoData means the backend answered successfully without data.
	OutcomeNoData OutcomeKind = "no_data"
	// OutcomeFailed means the request or the backend failed.
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome is the classified result of a backend answer.
type Outcome struct {
	Kind    OutcomeKind
	Message string // status text shown to the user
	Dates   []string
	Series  []Series
	Err     error // set when Kind is OutcomeFailed
}
