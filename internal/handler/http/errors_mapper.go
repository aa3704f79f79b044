package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger/internal/app"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked top to bottom, so specific sentinels must come
// before the category they wrap.
var errorResponses = []errorResponse{
	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidUsernamePassword},
	{service.ErrAuthentication, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{service.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{service.ErrDuplicateRequest, http.StatusConflict, app.MsgIdempotencyKeyReused},

	{service.ErrNonPositiveAmount, http.StatusBadRequest, app.MsgNonPositiveAmount},
	{service.ErrSelfTransfer, http.StatusBadRequest, app.MsgSelfTransfer},
	{service.ErrAmountPrecision, http.StatusBadRequest, app.MsgAmountPrecision},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInsufficientFunds, http.StatusUnprocessableEntity, app.MsgInsufficientFunds},
	{service.ErrInvalidRecipient, http.StatusUnprocessableEntity, app.MsgInvalidRecipient},
	{service.ErrTransferRejected, http.StatusUnprocessableEntity, service.ErrTransferRejected.Error()},

	{service.ErrTransferNotFound, http.StatusNotFound, app.MsgTransferNotFound},
	{service.ErrNotFound, http.StatusNotFound, service.ErrNotFound.Error()},
}

// responseFromError picks the status and plain-text body for err. Anything
// unknown is a 500 so storage details never leak to the caller.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError logs err with the request logger and answers with the mapped
// status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, body, status)
}
