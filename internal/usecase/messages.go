package usecase

// Banner messages shown above the form. Raw transport errors never reach the page.
const (
	MsgCatalogLoadFailed  = "problem loading campaigns"
	MsgCouldNotGenerate   = "could not generate the coupon, try again."
	MsgDuplicateEmail     = "a coupon has already been generated for this email"
	MsgSubmissionFailed   = "an error occurred while generating the coupon."
	MsgUnexpectedError    = "an unexpected error occurred."
	MsgSubmissionInFlight = "a coupon is already being generated"
	MsgCouponIssued       = "a coupon has already been issued, close it to request another"
)
