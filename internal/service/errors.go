package service

import "errors"

var (
	// ErrNoRestaurants marks a well-formed query that matched nothing. It is
	// deliberately distinct from transport failures so the dashboard can show
	// a neutral empty state instead of a failure banner.
	ErrNoRestaurants = errors.New("no restaurants found")

	// ErrMissingDates rejects a top-revenue query before any network call.
	ErrMissingDates = errors.New("both start and end dates are required")

	// ErrMissingTrendParams rejects a trends query before any network call.
	ErrMissingTrendParams = errors.New("restaurant and date range are required")

	// ErrOrdersFetchInFlight rejects a second load-more for a restaurant
	// whose next page is already being fetched.
	ErrOrdersFetchInFlight = errors.New("order page fetch already in flight")

	// ErrUnknownRestaurant marks a load-more for an id absent from the
	// working set.
	ErrUnknownRestaurant = errors.New("restaurant not in working set")

	// ErrNoOrderPage marks a load-more for a restaurant that has no order
	// page loaded to append onto.
	ErrNoOrderPage = errors.New("no order page loaded")
)

// ErrorKind buckets a failure for the presentation layer.
type ErrorKind string

const (
	ErrorNone       ErrorKind = ""
	ErrorValidation ErrorKind = "validation"
	ErrorEmpty      ErrorKind = "empty"
	ErrorTransport  ErrorKind = "transport"
)

// Classify maps an operation error onto its kind. Anything that is not a
// known validation or empty-result sentinel counts as a transport failure.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrMissingDates), errors.Is(err, ErrMissingTrendParams):
		return ErrorValidation
	case errors.Is(err, ErrNoRestaurants):
		return ErrorEmpty
	default:
		return ErrorTransport
	}
}
