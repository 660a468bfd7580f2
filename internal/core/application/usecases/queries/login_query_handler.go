package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginQueryHandler verifies credentials against the users table.
// A missing username and a wrong password both surface as
// errs.ErrUnauthorized so callers cannot probe for valid usernames.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle looks the user up by username and compares the stored bcrypt hash
// against the supplied password.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			username,
			full_name,
			user_type,
			password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	var (
		id           int64
		username     string
		fullName     string
		userType     string
		passwordHash string
	)

	err := row.Scan(&id, &username, &fullName, &userType, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return LoginQueryResponse{}, errs.ErrUnauthorized
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return LoginQueryResponse{}, errs.ErrUnauthorized
	}

	userID, err := kernel.NewID(id)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		ID:       userID,
		Username: username,
		FullName: fullName,
		UserType: account.UserType(userType),
	}, nil
}
