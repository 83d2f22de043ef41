package models

// Session is the current authenticated identity. It lives in memory only; a
// new process starts anonymous and the token is treated as opaque.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IDToken  string `json:"idToken"`
	UserID   string `json:"localId"`
}
