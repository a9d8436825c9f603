package logic

import "errors"

// Error taxonomy of the identity/relationship core. Callers match with
// errors.Is; wrapped messages carry the identifier or actor pair involved.
var (
	// The supplied identifier is empty or has no resolvable host. Local,
	// never worth an automatic retry.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// Transport-level failure talking to the remote host. Transient; the
	// caller may retry with backoff, this core never retries internally.
	ErrDiscoveryUnreachable = errors.New("discovery endpoint unreachable")

	// The caller-supplied deadline expired mid-discovery.
	ErrDiscoveryTimeout = errors.New("discovery timed out")

	// The remote host answered with a non-success status. Terminal for this
	// identifier until the remote side changes.
	ErrDiscoveryNotFound = errors.New("discovery resource not found")

	// The response body is not a usable resource descriptor.
	ErrDiscoveryMalformedResponse = errors.New("malformed discovery response")

	// A requested relationship transition's precondition does not hold.
	ErrRelationshipConflict = errors.New("relationship state conflict")
)
