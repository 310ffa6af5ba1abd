package response

// Envelope constants.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	DefaultErrorCode        = 1
	InternalServerErrorCode = 500
)
