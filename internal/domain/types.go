package domain

// RequestContext carries authenticated user info through every operation
// that needs identity. There is no ambient session state.
type RequestContext struct {
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	RequestID string `json:"-"`
}

// Authenticated reports whether the context belongs to a signed-in profile.
func (rc RequestContext) Authenticated() bool {
	return rc.UserID > 0
}
