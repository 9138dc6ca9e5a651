package client

import "github.com/BruksfildServices01/client-registry/internal/httperr"

// Error kinds surfaced by the repository. Each wraps the driver error that
// caused it, so errors.Is matches the kind and the cause stays loggable.
var (
	ErrConnectionFailure   = httperr.ErrBusiness("connection_failure")
	ErrConstraintViolation = httperr.ErrBusiness("constraint_violation")
	ErrReferenceViolation  = httperr.ErrBusiness("reference_violation")
	ErrInvalidField        = httperr.ErrBusiness("invalid_field")
)
