package provider

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
)

// ResponseError is returned when the provider answered but not with what the
// relay needs. Body holds the raw upstream response for display.
type ResponseError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Reason     error
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s responded %d", e.Endpoint, e.StatusCode)
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *ResponseError) Unwrap() []error {
	errs := []error{errors.ErrProviderResponse}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	return errs
}

// UpstreamDetail returns what should be surfaced to the browser for err: the
// raw provider body when there is one, otherwise the error text.
func UpstreamDetail(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Body != "" {
		return respErr.Body
	}
	return err.Error()
}

// OAuthError is the RFC 6749 section 5.2 error body.
type OAuthError struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// OAuth decodes Body as an RFC 6749 error response.
func (e *ResponseError) OAuth() (OAuthError, bool) {
	var oauthErr OAuthError
	if err := json.Unmarshal([]byte(e.Body), &oauthErr); err != nil || oauthErr.Code == "" {
		return OAuthError{}, false
	}
	return oauthErr, true
}
