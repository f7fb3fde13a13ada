package util

// --------------------------------------------------------------------------
// Hash Functions
// --------------------------------------------------------------------------

// HashString generates a hash value for a string with a seed
// This function uses the FNV-1a hash algorithm, which is fast and has good distribution
func HashString(s string, seed uint64) uint64 {

	// FNV-1a hash with seed incorporation
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	// Start with the offset combined with our seed for uniqueness
	hash := uint64(offset64) ^ seed

	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}

	return hash
}

// CombineState packs a type hash and a 16 bit state value into one identity.
// The low 16 bits hold the state, the remaining bits the (truncated) type hash.
func CombineState(typeHash uint64, state int) int64 {
	return int64((typeHash << 16) | uint64(uint16(state)))
}
