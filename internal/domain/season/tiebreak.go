package season

// Decide returns the key of the side that wins a head-to-head comparison.
// Equal scores go to the lexicographically lower team key so that every
// comparison has exactly one winner.
func Decide(aKey string, aPoints float64, bKey string, bPoints float64) string {
	switch {
	case aPoints > bPoints:
		return aKey
	case bPoints > aPoints:
		return bKey
	case aKey <= bKey:
		return aKey
	default:
		return bKey
	}
}
