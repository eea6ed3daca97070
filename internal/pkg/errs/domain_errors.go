package errs

import "errors"

// Sentinel errors shared across the workflow layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Submission errors
	ErrSubmissionInFlight  = errors.New("submission already in flight")
	ErrNoCouponResult      = errors.New("no coupon result in session")
	ErrCouponAlreadyIssued = errors.New("coupon already issued in session")

	// Artwork errors
	ErrArtworkNotFound = errors.New("artwork not found")

	// Remote service errors
	ErrRemoteUnavailable = errors.New("remote coupon service unavailable")
	ErrMalformedResponse = errors.New("malformed response from coupon service")
)
