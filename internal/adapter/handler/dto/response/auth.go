package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/usecase/auth"
)

type AdminResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Admin        AdminResponse `json:"admin"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func LoginFromResult(tokens *auth.TokenPair, admin *entity.AdminUser) LoginResponse {
	return LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
		Admin: AdminResponse{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
		},
	}
}

func TokensFromPair(tokens *auth.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	}
}
