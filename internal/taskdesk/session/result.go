package session

import "github.com/mistakeknot/taskdesk/internal/taskdesk/validate"

// Kind classifies the outcome of a session operation. Every operation
// produces exactly one Result so callers can surface success, failure, and
// cancellation distinctly.
type Kind int

const (
	// KindSuccess: the operation completed and state was updated.
	KindSuccess Kind = iota
	// KindFailure: the remote call failed; state is unchanged.
	KindFailure
	// KindInvalid: local validation failed; no remote call was made.
	KindInvalid
	// KindCanceled: the user declined; no remote call was made.
	KindCanceled
	// KindBusy: another remote call is in flight; the submission was rejected.
	KindBusy
	// KindEmpty: the operation had nothing to act on (e.g. empty export).
	KindEmpty
)

// Result is the single signal an operation emits.
type Result struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages when Kind is KindInvalid.
	Fields validate.FieldErrors
	// Path is set on successful exports.
	Path string
}

func success(msg string) Result { return Result{Kind: KindSuccess, Message: msg} }
func failure(msg string) Result { return Result{Kind: KindFailure, Message: msg} }
func invalid(fe validate.FieldErrors) Result {
	return Result{Kind: KindInvalid, Message: fe.First(), Fields: fe}
}
func busy() Result {
	return Result{Kind: KindBusy, Message: "Another operation is in progress"}
}
