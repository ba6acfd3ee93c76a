package rating

// Summary is the aggregate exposed per product: the arithmetic mean of all
// its ratings and how many there are. A product without ratings has a zero
// Summary.
type Summary struct {
	Average float64
	Count   int
}

// Summarize computes the Summary of a set of rating values. Values are taken
// as they are; range checks belong to NewRating.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return Summary{
		Average: float64(sum) / float64(len(values)),
		Count:   len(values),
	}
}
