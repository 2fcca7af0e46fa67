// Package apierror maps service errors onto HTTP problem responses.
package apierror

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// FromService returns the huma error matching err's place in the service
// error taxonomy. Unknown errors become 500; their detail goes to the request
// log only, never to the client.
func FromService(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(msg, err)
	case errors.Is(err, service.ErrConflict):
		return huma.Error409Conflict(msg, err)
	case errors.Is(err, service.ErrConstraintViolation):
		return huma.Error422UnprocessableEntity(msg, err)
	default:
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("error", err.Error())
		}
		return huma.Error500InternalServerError(msg)
	}
}
