package handlers

import (
	"errors"
	"net/http"

	"retifica_os/internal/adapter/http/middleware"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase"
	"retifica_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidStage   = pkg.NewDomainErrorSimple("INVALID_STAGE", "Unknown stage or service type", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "missing employee identity", http.StatusUnauthorized)
)

var rejectionCodes = map[error]string{
	usecase.ErrResponsibleRequired:        "RESPONSIBLE_REQUIRED",
	usecase.ErrResponsibleNotFound:        "RESPONSIBLE_NOT_FOUND",
	usecase.ErrSubtasksIncomplete:         "SUBTASKS_INCOMPLETE",
	usecase.ErrServicesIncomplete:         "SERVICES_INCOMPLETE",
	usecase.ErrStagePrerequisite:          "STAGE_PREREQUISITE",
	usecase.ErrRetificaRequiresProduction: "ORDER_NOT_IN_PRODUCTION",
	usecase.ErrStageNotApplicable:         "STAGE_NOT_APPLICABLE",
	usecase.ErrPauseReasonRequired:        "PAUSE_REASON_REQUIRED",
	usecase.ErrSubtaskNotSelected:         "SUBTASK_NOT_SELECTED",
}

// mapError translates use-case errors into the HTTP envelope. Guard
// rejections keep their user-facing message.
func mapError(err error) *pkg.AppError {
	var rej *usecase.RejectionError
	if errors.As(err, &rej) {
		if errors.Is(rej.Cause, usecase.ErrEmployeeBusy) {
			return pkg.NewDomainError("EMPLOYEE_BUSY", rej.Message, err, http.StatusConflict)
		}
		code, ok := rejectionCodes[rej.Cause]
		if !ok {
			code = "ACTION_REJECTED"
		}
		return pkg.NewDomainError(code, rej.Message, err, http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrder),
		errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidSubtask):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStage), errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainError("INVALID_STAGE", "Unknown stage or service type", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainError("SERVICE_NOT_FOUND", "Service not found on this order", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubtaskNotFound):
		return pkg.NewDomainError("SUBTASK_NOT_FOUND", "Sub-task not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainError("ORDER_ALREADY_EXISTS", "An order with this id already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSaveInProgress):
		return pkg.NewDomainError("SAVE_IN_PROGRESS", "A save for this order is already in progress", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Action not allowed for this user", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.L().Error("[http][handler] request failed",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.ErrorF(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentSession writes 401 and returns false when no session was resolved.
func currentSession(c *gin.Context) (entities.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		writeAppError(c, errUnauthorized)
		return entities.Session{}, false
	}
	return sess, true
}
