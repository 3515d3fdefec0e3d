package external

// AuthUser is the identity record exposed by the authentication provider. ID
// is the stable user identifier consumed by the saved-cities operations.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated session as returned by the provider's token
// endpoints.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// AuthErrorResponse is the provider's error payload.
type AuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

// Text returns the most specific error message present in the payload.
func (e AuthErrorResponse) Text() string {
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
