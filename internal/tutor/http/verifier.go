package http

import (
	"context"

	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
)

// identityResolver adapts SessionService to the httpx.TokenVerifier interface
// so the authn middleware stays decoupled from the service layer.
type identityResolver struct {
	Sessions *service.SessionService
}

func (r *identityResolver) VerifyToken(ctx context.Context, token string) (httpx.Identity, error) {
	user, err := r.Sessions.Verify(ctx, token)
	if err != nil {
		return httpx.Identity{}, err
	}

	return httpx.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}, nil
}
