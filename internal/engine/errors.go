package engine

import "errors"

var (
	// ErrInvalidParameters reports a request where neither days nor hours is
	// given and positive, or the base date fails to parse.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrHolidaySourceUnavailable reports that the holiday supplier could not
	// be reached or returned an unusable response.
	ErrHolidaySourceUnavailable = errors.New("holiday source unavailable")

	// ErrInternal reports a violated invariant while producing the result.
	ErrInternal = errors.New("internal error")
)
