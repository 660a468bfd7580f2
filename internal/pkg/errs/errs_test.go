package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 1, 10000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 1, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("tracking_number")

		assert.Equal(t, "tracking_number", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: tracking_number", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("tracking_number", cause)

		assert.Equal(t, "tracking_number", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: tracking_number (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestDuplicateKeyError(t *testing.T) {
	t.Run("NewDuplicateKeyError", func(t *testing.T) {
		err := errs.NewDuplicateKeyError("tracking_number", "TRK-001")

		assert.Equal(t, "tracking_number", err.ParamName)
		assert.Equal(t, "TRK-001", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "duplicate key: tracking_number TRK-001 already exists", err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})

	t.Run("NewDuplicateKeyErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewDuplicateKeyErrorWithCause("license_plate", "KA-01-1234", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"duplicate key: license_plate KA-01-1234 already exists (cause: unique constraint violated)",
			err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})
}

func TestResourceInUseError(t *testing.T) {
	err := errs.NewResourceInUseError("driver", "shipment", 3)

	assert.Equal(t, "driver", err.Resource)
	assert.Equal(t, "shipment", err.ReferencedBy)
	assert.Equal(t, int64(3), err.Count)
	assert.Equal(t, "resource is in use: driver is referenced by 3 shipment record(s)", err.Error())
	assert.Equal(t, errs.ErrResourceInUse, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrDuplicateKey)
		require.Error(t, errs.ErrResourceInUse)
		require.Error(t, errs.ErrUnauthorized)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "duplicate key", errs.ErrDuplicateKey.Error())
		assert.Equal(t, "resource is in use", errs.ErrResourceInUse.Error())
		assert.Equal(t, "invalid credentials", errs.ErrUnauthorized.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("shipmentId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", -1, 1, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customer_id")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		duplicateKeyErr := errs.NewDuplicateKeyError("tracking_number", "TRK-001")
		require.ErrorIs(t, duplicateKeyErr, errs.ErrDuplicateKey)

		resourceInUseErr := errs.NewResourceInUseError("vehicle", "shipment", 1)
		require.ErrorIs(t, resourceInUseErr, errs.ErrResourceInUse)
	})
}
