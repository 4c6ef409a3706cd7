package hierarchy

import (
	"errors"
	"fmt"
)

var (
	ErrIntegrity       = errors.New("hierarchy integrity violation")
	ErrCycle           = fmt.Errorf("%w: cycle", ErrIntegrity)
	ErrSelfReference   = fmt.Errorf("%w: non-root self reference", ErrIntegrity)
	ErrOrphan          = fmt.Errorf("%w: orphaned upline", ErrIntegrity)
	ErrDepthExceeded   = fmt.Errorf("%w: depth exceeded", ErrIntegrity)
	ErrAccountNotFound = errors.New("account not found")
)

type Kind string

const (
	KindCycle         Kind = "cycle"
	KindSelfReference Kind = "self_reference"
	KindOrphan        Kind = "orphan"
	KindDepthExceeded Kind = "depth_exceeded"
)

// IntegrityError names the branch that must be quarantined. AccountID heads
// that branch: the start of an upline walk, or the account a downline walk
// could not get past. Offender is where the violation was found.
type IntegrityError struct {
	Kind      Kind
	AccountID string
	Offender  string
}

func newIntegrityError(kind Kind, accountID, offender string) *IntegrityError {
	return &IntegrityError{Kind: kind, AccountID: accountID, Offender: offender}
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: branch %s, offender %s", e.sentinel(), e.AccountID, e.Offender)
}

func (e *IntegrityError) Unwrap() error {
	return e.sentinel()
}

func (e *IntegrityError) sentinel() error {
	switch e.Kind {
	case KindCycle:
		return ErrCycle
	case KindSelfReference:
		return ErrSelfReference
	case KindOrphan:
		return ErrOrphan
	case KindDepthExceeded:
		return ErrDepthExceeded
	}
	return ErrIntegrity
}

// AsIntegrityError extracts the integrity error from err, if any.
func AsIntegrityError(err error) (*IntegrityError, bool) {
	var ie *IntegrityError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
