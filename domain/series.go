package domain

// Point is one simulation step. Period 0 is the state before any
// compounding; A and B are the two tracked amounts, already truncated.
type Point struct {
	Period int   `json:"period"`
	A      int64 `json:"a"`
	B      int64 `json:"b"`
}

// Truncate drops the fractional part of an amount (toward zero).
func Truncate(v float64) int64 {
	return int64(v)
}
