package llm

import "errors"

// Failure kinds of a match request. Callers collapse them into one message,
// the codes exist for logs and metrics.
var (
	ErrConfiguration = errors.New("CONFIGURATION_ERROR")
	ErrEmptyResponse = errors.New("EMPTY_RESPONSE")
	ErrParse         = errors.New("PARSE_ERROR")
	ErrUpstream      = errors.New("UPSTREAM_ERROR")
)

// Code maps an error returned by a Matcher to its failure kind.
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrConfiguration):
		return ErrConfiguration.Error()
	case errors.Is(err, ErrEmptyResponse):
		return ErrEmptyResponse.Error()
	case errors.Is(err, ErrParse):
		return ErrParse.Error()
	case errors.Is(err, ErrUpstream):
		return ErrUpstream.Error()
	default:
		return "UNKNOWN_ERROR"
	}
}
