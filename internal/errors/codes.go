package errors

// Code classifies an error for callers that branch on failure kind.
type Code string

// The service uses a deliberately small set of codes. Repository failures
// map to NotFound/AlreadyExists/Unavailable, input problems to
// InvalidArgument/OutOfRange, rule preconditions (insufficient funds,
// exhausted resources) to FailedPrecondition, and anything unexpected to
// Internal.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
