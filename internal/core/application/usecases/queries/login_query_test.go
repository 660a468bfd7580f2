package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginQuery_Valid(t *testing.T) {
	query, err := queries.NewLoginQuery("jsmith", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jsmith", query.Username())
	assert.Equal(t, "s3cret", query.Password())
}

func TestNewLoginQuery_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "s3cret"},
		{name: "empty password", username: "jsmith", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewLoginQuery(tc.username, tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestLoginQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.LoginQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLoginQueryIsNotConstructed)
}
