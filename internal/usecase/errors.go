package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidStage       = errors.New("invalid stage")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidSubtask     = errors.New("invalid subtask")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrServiceNotFound    = errors.New("service not found on order")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrForbidden          = errors.New("action not allowed for this user")
	ErrSaveInProgress     = errors.New("a save for this order is already in progress")
)

// Guard rejections. They reach callers wrapped in a RejectionError that
// carries the user-facing message.
var (
	ErrResponsibleRequired        = errors.New("select a responsible employee first")
	ErrResponsibleNotFound        = errors.New("responsible employee not found or inactive")
	ErrSubtasksIncomplete         = errors.New("complete all sub-tasks first")
	ErrServicesIncomplete         = errors.New("complete all services of this stage first")
	ErrStagePrerequisite          = errors.New("complete retifica, montagem or dinamometro before the final inspection")
	ErrRetificaRequiresProduction = errors.New("retifica can only start while the order is in production")
	ErrStageNotApplicable         = errors.New("stage does not apply to this order")
	ErrEmployeeBusy               = errors.New("employee is busy on another activity")
	ErrPauseReasonRequired        = errors.New("choose or type a pause reason")
	ErrSubtaskNotSelected         = errors.New("only selected sub-tasks can be completed")
)

// RejectionError is a user-correctable guard violation. Persisted state is
// unchanged when one is returned.
type RejectionError struct {
	Cause   error
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func (e *RejectionError) Unwrap() error { return e.Cause }

func reject(cause error) error {
	return &RejectionError{Cause: cause, Message: cause.Error()}
}

func rejectf(cause error, format string, args ...any) error {
	return &RejectionError{Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a guard rejection.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}
