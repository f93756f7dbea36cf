package models

import "strconv"

// RatingUnavailable is the placeholder shown when the rating collaborator
// cannot supply a value for a book.
const RatingUnavailable = "Unavailable"

// Rating is the average-rating value for a book as reported by the external
// rating service. The Available flag distinguishes a real rating from the
// degraded state; the Average field is meaningless when Available is false.
type Rating struct {
	// Average is the average rating reported by the collaborator.
	Average float64

	// Available reports whether the collaborator supplied a usable value.
	Available bool
}

// NewRating returns an available rating carrying the given average.
func NewRating(average float64) Rating {
	return Rating{Average: average, Available: true}
}

// Display returns the value to render in the rating slot: the numeric
// average when available, otherwise the [RatingUnavailable] sentinel.
func (r Rating) Display() string {
	if !r.Available {
		return RatingUnavailable
	}

	return strconv.FormatFloat(r.Average, 'f', -1, 64)
}
