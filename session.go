package muse_go

import (
	"github.com/zacharyhill/muse-go/types"
)

// Session is the caller-owned snapshot of who is browsing and where.
// It is a plain value: tracking calls read it, SetUser and WithProperty
// return replacements, nothing mutates it behind the caller's back.
// The visitor token is deliberately absent; it lives in the identity
// store and is attached at dispatch time.
type Session struct {
	// User holds what the host knows about the visitor so far.
	// Only Email and Name are read; the token is attached from the
	// identity store at dispatch time.
	User types.User

	// PropertyId scopes events to one property (site/app) when the
	// host runs several under one client id.
	PropertyId string
}

func NewSession() Session {
	return Session{}
}

// WithProperty returns a copy of the session pointing at the given
// property. Subsequent payloads carry it; no beacon is fired.
func (s Session) WithProperty(propertyId string) Session {
	s.PropertyId = propertyId
	return s
}
