package http

import (
	"errors"
	"net/http"
	"strconv"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// failureResponse is the uniform error envelope. Mutating endpoints answer
// {"success": true, ...} on success and this shape on failure.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusFromError maps the error taxonomy onto HTTP status codes. Validation
// failures and referential-integrity rejections are client errors; anything
// unrecognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, errs.ErrResourceInUse),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope with the mapped status code.
func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusFromError(err), failureResponse{Success: false, Error: err.Error()})
}

// failBadRequest writes a 400 envelope for malformed request bodies.
func failBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, failureResponse{Success: false, Error: message})
}

// created writes the {"success": true, "<idField>": id} envelope used by
// all creation endpoints.
func created(ctx echo.Context, idField string, id kernel.ID) error {
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, idField: id.Int64()})
}

// ok writes the bare {"success": true} envelope.
func ok(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

// pathID parses the named path parameter as a positive numeric identifier.
func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}
