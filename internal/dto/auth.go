package dto

// OAuthLoginRequest carries the authorization code obtained from Kakao.
type OAuthLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// OAuthLoginResponse is returned on successful login or registration. The
// refresh token is also persisted server-side for later revocation.
type OAuthLoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse is returned by the token refresh endpoint.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// SuccessResponse is the generic success payload for endpoints without a
// richer result, e.g. logout and score updates.
type SuccessResponse struct {
	Success bool `json:"success"`
}
