// Package auth contains the HTTP handlers for signup, login, logout and
// password recovery. All of its endpoints except logout are public; the
// session middleware skips operations marked with the public metadata flag.
package auth

import "strings"

const sessionCookieName = "session_token"

// sessionTokenFromRequest extracts the raw session token from a bearer
// Authorization header, falling back to the session cookie.
func sessionTokenFromRequest(authorization, cookie string) string {
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return token
	}
	return cookie
}
