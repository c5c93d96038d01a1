package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	stubapi.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	stubapi.ErrInvalidStatus:           {http.StatusBadRequest, app.MsgInvalidBerthingStatus},
	stubapi.ErrWrongCredentials:        {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	stubapi.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	stubapi.ErrWrongPassword:           {http.StatusBadRequest, app.MsgWrongPassword},
	stubapi.ErrResetTokenInvalid:       {http.StatusBadRequest, app.MsgResetTokenInvalid},
	stubapi.ErrNotFound:                {http.StatusNotFound, app.MsgNotFound},
	stubapi.ErrEmailAlreadyExists:      {http.StatusConflict, app.MsgEmailAlreadyExists},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status and a
// {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	writeMessage(w, resp.message, resp.status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteMessage(w, message, status)
}
