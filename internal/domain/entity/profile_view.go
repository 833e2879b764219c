package entity

// RecentActivityLimit is the number of ledger entries returned with a profile
const RecentActivityLimit = 10

// ProfileView is a profile with its most recent ledger entries
type ProfileView struct {
	Profile        *Profile
	RecentActivity []*PointTransaction
}

// LedgerCheck compares a stored balance with the sum of its ledger
type LedgerCheck struct {
	UserID     string
	Balance    int64
	LedgerSum  int64
	EntryCount int64
}

// Consistent reports whether the balance equals the ledger sum
func (c LedgerCheck) Consistent() bool {
	return c.Balance == c.LedgerSum
}
