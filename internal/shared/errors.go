package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library export errors. The extractor absorbs both into an empty result.
	ErrSourceUnavailable = fmt.Errorf("library export unavailable")
	ErrMalformedDocument = fmt.Errorf("malformed library export")

	// Report errors
	ErrWriteFailed   = fmt.Errorf("failed to write report")
	ErrInvalidFormat = fmt.Errorf("invalid report format")

	// Cache errors
	ErrTrackNotFound = fmt.Errorf("track not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
