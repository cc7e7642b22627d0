package domain

import "errors"

var (
	ErrTransport           = errors.New("transport error")
	ErrUsage               = errors.New("usage error")
	ErrSigning             = errors.New("signing error")
	ErrInvalidKey          = errors.New("invalid private key")
	ErrNonceFetchFailed    = errors.New("failed to fetch nonce")
	ErrLoginFailed         = errors.New("login failed")
	ErrSessionLookupFailed = errors.New("failed to retrieve user id")
	ErrNotAuthenticated    = errors.New("session is not authenticated")
	ErrRuleNotFound        = errors.New("post rule not found")
	ErrPostTimeout         = errors.New("post task verification timed out")
	ErrCredentialsMissing  = errors.New("social credentials missing")
)
