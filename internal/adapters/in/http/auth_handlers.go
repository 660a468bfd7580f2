package http

import (
	nethttp "net/http"

	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}

// Login handles POST /api/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return failBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewLoginQuery(req.Username, req.Password)
	if err != nil {
		return fail(ctx, err)
	}

	user, err := s.queries.Login.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, echo.Map{
		"success": true,
		"user": loginUser{
			ID:       user.ID.Int64(),
			Username: user.Username,
			FullName: user.FullName,
			UserType: string(user.UserType),
		},
	})
}
