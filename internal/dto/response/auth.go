package response

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(token string) *TokenResponse {
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
}
