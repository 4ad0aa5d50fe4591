package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008
	NotImplemented   Code = 100009

	// Contract codes
	FailedPrecondition  Code = 500001
	InsufficientPayment Code = 500002
	Expired             Code = 500003
	Deserialization     Code = 500004
	ExternalCall        Code = 500005
)

func (c Code) String() string {
	switch c {
	case BadRequest:
		return "bad_request"
	case PermissionDenied:
		return "permission_denied"
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case Internal:
		return "internal"
	case Unavailable:
		return "unavailable"
	case NotImplemented:
		return "not_implemented"
	case FailedPrecondition:
		return "failed_precondition"
	case InsufficientPayment:
		return "insufficient_payment"
	case Expired:
		return "expired"
	case Deserialization:
		return "deserialization"
	case ExternalCall:
		return "external_call"
	}

	return "unknown"
}
