package domain

// Session is the gateway-held authentication state for one browser.
// The backend owns the tokens; the gateway only stores and forwards them.
// All three fields are written atomically at login and removed together at
// logout or on the first authentication failure from the backend.
type Session struct {
	ID           string `json:"-"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	Role         Role   `json:"role"`
}

// Authenticated reports whether the session carries an access token.
// Screens that require auth must not issue data calls when this is false.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}
