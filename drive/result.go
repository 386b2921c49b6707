// Package drive talks to the cloud drive's offline download API.
package drive

// Kind discriminates the outcome of one submission.
type Kind uint8

const (
	KindSuccess Kind = iota
	// KindTransport means no usable response arrived: connection, TLS or timeout errors.
	KindTransport
	// KindMalformed means the response had neither a file/task object nor an error field.
	KindMalformed
	// KindAPIError means the API declared an error.
	KindAPIError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindTransport:
		return "transport failure"
	case KindMalformed:
		return "malformed response"
	case KindAPIError:
		return "api error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one submission: Success carrying the remote identifier,
// or a failure carrying its kind and a human-readable reason.
type Result struct {
	Kind   Kind
	ID     string
	Reason string
}

// Success builds a successful result. id may be empty when the API omits it.
func Success(id string) Result {
	return Result{Kind: KindSuccess, ID: id}
}

// Failure builds a failed result.
func Failure(kind Kind, reason string) Result {
	return Result{Kind: kind, Reason: reason}
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}
