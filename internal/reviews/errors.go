package reviews

import "errors"

// ErrReviewNotFound is returned when a review ID does not exist.
var ErrReviewNotFound = errors.New("reviews: review not found")
