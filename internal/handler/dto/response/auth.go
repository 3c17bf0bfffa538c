package response

import (
	"marina-ops/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
