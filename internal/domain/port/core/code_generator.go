package core

// CodeGenerator produces random tokens for reward claims and email verification
type CodeGenerator interface {
	// RewardCode returns a new human-readable claim code
	RewardCode() (string, error)
	// NumericCode returns a zero-padded decimal code of the given length
	NumericCode(digits int) (string, error)
}
