package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrValidationFailed is returned when a submission is missing a
	// required field. No upstream call is made in that case.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrUnauthorized is returned when the submitted client secret does
	// not match the configured one. No upstream call is made in that case.
	ErrUnauthorized = goerr.New("unauthorized")

	// ErrServerMisconfigured is returned when the upstream repository
	// identity (token, owner or repo) is not configured.
	ErrServerMisconfigured = goerr.New("server misconfigured")

	// ErrUpstreamFailure is returned when the single attempt against the
	// upstream API fails. The caller surfaces it and allows manual retry.
	ErrUpstreamFailure = goerr.New("upstream failure")

	ErrInvalidOption = goerr.New("invalid option")
)
