package entity

// Principal is the authenticated caller as resolved by the identity gateway
type Principal struct {
	UserID    string
	Email     string
	SessionID string
}

// IsZero reports whether no caller is attached
func (p Principal) IsZero() bool {
	return p.UserID == ""
}
