package apierrors

import (
	"errors"
	"fmt"
	"strings"

	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/domain"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is. Processor
// sentinels wrap one of the domain kinds, so the switch only needs the kinds;
// the user-facing message is the sentinel text before the kind suffix.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case httpx.IsTimeout(err):
		return GatewayTimeout("The external service did not answer in time. Please try again.", err)

	case httpx.UpstreamStatus(err) != 0:
		return BadGateway(fmt.Sprintf("The external service answered with status %d. Please try again.", httpx.UpstreamStatus(err)), err)

	case errors.Is(err, domain.ErrBadInput):
		return BadRequest(CodeInvalidInput, userMessage(err, domain.ErrBadInput, "Invalid input"))

	case errors.Is(err, domain.ErrNotFound):
		return NotFound(CodeNotFound, userMessage(err, domain.ErrNotFound, "Resource not found"))

	case errors.Is(err, domain.ErrConflict):
		return Conflict(CodeConflict, userMessage(err, domain.ErrConflict, "Conflicting request"))

	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(CodeForbidden, userMessage(err, domain.ErrForbidden, "You do not have access to this resource"))

	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized(userMessage(err, domain.ErrUnauthorized, "Invalid credentials"))

	default:
		return InternalError(err)
	}
}

// userMessage returns the innermost sentinel text wrapping kind, for example
// "invite already used" from "failed to redeem: invite already used: conflict".
func userMessage(err, kind error, fallback string) string {
	suffix := ": " + kind.Error()
	msg := ""
	for e := err; e != nil; e = errors.Unwrap(e) {
		if s := e.Error(); strings.HasSuffix(s, suffix) {
			msg = strings.TrimSuffix(s, suffix)
		}
	}
	if msg == "" {
		return fallback
	}
	return msg
}
