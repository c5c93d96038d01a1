package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	respErr := &ResponseError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Message:    serverMessage(body),
		Body:       body,
		err:        statusError(resp.StatusCode()),
	}

	return respErr
}

// NewResponseError builds the error [API.Do] returns for a non-2xx status.
// The result wraps the sentinel matching status.
func NewResponseError(status int, message string) *ResponseError {
	return &ResponseError{
		StatusCode: status,
		Message:    message,
		err:        statusError(status),
	}
}

func statusError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// serverMessage pulls a human readable message out of an error body: the
// "message" or "error" field of a JSON object, or the trimmed plain text.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}

	return strings.TrimSpace(string(body))
}
