package domain

import "strings"

// SessionTokenCookie is the cookie that proves a completed wallet login.
const SessionTokenCookie = "__Secure-next-auth.session-token"

type Session struct {
	Cookies []string
	UserID  string
}

func NewSession(cookies ...string) Session {
	var s Session
	s.Add(cookies...)
	return s
}

// Add appends "name=value" cookies that are not already present, keeping order.
func (s *Session) Add(cookies ...string) {
	for _, cookie := range cookies {
		cookie = strings.TrimSpace(cookie)
		if cookie == "" || s.has(cookie) {
			continue
		}
		s.Cookies = append(s.Cookies, cookie)
	}
}

func (s Session) Header() string {
	return strings.Join(s.Cookies, "; ")
}

func (s Session) Authenticated() bool {
	for _, cookie := range s.Cookies {
		if strings.HasPrefix(cookie, SessionTokenCookie+"=") {
			return true
		}
	}
	return false
}

func (s Session) has(cookie string) bool {
	for _, existing := range s.Cookies {
		if existing == cookie {
			return true
		}
	}
	return false
}

type Nonce struct {
	CSRFToken string
	Cookies   []string
}

type SignedPayload struct {
	Address   string
	Nonce     string
	Message   string
	Text      string
	Signature string
}
