package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/session"
)

// RequestMiddleware runs, in order, on every request before it is sent. An
// error aborts the request.
type RequestMiddleware func(ctx context.Context, req *resty.Request) error

// ResponseMiddleware runs, in order, on every completed exchange. resp is the
// response (its RawResponse is nil on transport failure) and err is the error
// the caller would otherwise receive; the returned error replaces it.
type ResponseMiddleware func(ctx context.Context, resp *resty.Response, err error) error

// AttachToken sets "Authorization: Bearer <token>" from a fresh read of the
// session token. Requests that already carry an Authorization header and
// requests made without a stored token are left as is.
func AttachToken(sess *session.Session) RequestMiddleware {
	return func(ctx context.Context, req *resty.Request) error {
		if req.Header.Get("Authorization") != "" {
			return nil
		}

		if token := sess.Token(ctx); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// HandleUnauthorized tears the session down when the server answers 401 and
// then returns err untouched. Any other outcome passes through.
func HandleUnauthorized(sess *session.Session, log *logger.Logger) ResponseMiddleware {
	return func(ctx context.Context, resp *resty.Response, err error) error {
		if resp == nil || resp.RawResponse == nil || !session.IsSessionExpired(resp.StatusCode()) {
			return err
		}

		log.Info().
			Str("func", "HandleUnauthorized").
			Str("url", resp.Request.URL).
			Msg("session rejected by server, signing out")

		if tdErr := sess.Teardown(ctx); tdErr != nil {
			log.Warn().Err(tdErr).Str("func", "HandleUnauthorized").Msg("session teardown incomplete")
		}

		return err
	}
}
