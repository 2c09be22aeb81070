package cfgerr

import (
	"errors"
	"fmt"
	"strings"
)

// Stable message codes.
const (
	// CodeConflictingMethodAnnotations: two of DenyAll, PermitAll and
	// RolesAllowed on one method
	CodeConflictingMethodAnnotations = "CNTR0150E"

	// CodeDuplicateMethodRole: a role listed twice in a method RolesAllowed
	CodeDuplicateMethodRole = "CNTR0151E"

	// CodeConflictingClassAnnotations: two of DenyAll, PermitAll and
	// RolesAllowed on one class
	CodeConflictingClassAnnotations = "CNTR0152E"

	// CodeDuplicateClassRole: a role listed twice in a class RolesAllowed
	CodeDuplicateClassRole = "CNTR0153E"

	// CodeInvalidAccessTimeout: access timeout below -1 or at the maximum
	CodeInvalidAccessTimeout = "CNTR0192E"

	// CodeAccessTimeoutOverflow: access timeout does not fit in milliseconds
	CodeAccessTimeoutOverflow = "CNTR0196E"

	// CodeAsyncMissingMethodName: async-method element without a method name
	CodeAsyncMissingMethodName = "CNTR0203E"

	// CodeAsyncWildcardParams: async-method element with "*" and params
	CodeAsyncWildcardParams = "CNTR0204E"

	// CodeStatefulTimeoutOverflow: stateful timeout does not fit in milliseconds
	CodeStatefulTimeoutOverflow = "CNTR0309E"

	// CodeNegativeStatefulTimeoutAnnotation: stateful timeout annotation below -1
	CodeNegativeStatefulTimeoutAnnotation = "CNTR0311E"

	// CodeNegativeStatefulTimeoutXML: stateful timeout element below -1
	CodeNegativeStatefulTimeoutXML = "CNTR0312E"
)

// Error is a configuration error that blocks the deployment of a bean.
type Error struct {
	// Code is one of the stable message codes
	Code string

	// Bean is the name of the bean being assembled
	Bean string

	// Module is the name of the module containing the bean
	Module string

	// Message is a human-readable description
	Message string

	// Details holds the values a diagnostic message interpolates
	Details map[string]any

	// Cause is the underlying error, if any
	Cause error
}

// New creates a configuration error with a formatted message.
func New(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithBean records the bean and module the error belongs to.
// It returns the same error for chaining.
func (e *Error) WithBean(bean, module string) *Error {
	e.Bean = bean
	e.Module = module
	return e
}

// WithDetails merges details into the error.
// It returns the same error for chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithCause sets the underlying error.
// It returns the same error for chaining.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Detail returns one detail value, or nil.
func (e *Error) Detail(key string) any {
	if e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// Error formats the error as "bean [module/code]: message: cause".
func (e *Error) Error() string {
	var parts []string

	switch {
	case e.Bean != "" && e.Module != "":
		parts = append(parts, fmt.Sprintf("%s [%s/%s]", e.Bean, e.Module, e.Code))
	case e.Bean != "":
		parts = append(parts, fmt.Sprintf("%s [%s]", e.Bean, e.Code))
	default:
		parts = append(parts, e.Code)
	}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrConfiguration or an *Error with the same
// code.
func (e *Error) Is(target error) bool {
	if target == ErrConfiguration {
		return true
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrConfiguration matches every configuration error.
var ErrConfiguration = errors.New("configuration error")

// Sentinels, one per code, for errors.Is.
var (
	ErrConflictingMethodAnnotations      = &Error{Code: CodeConflictingMethodAnnotations}
	ErrDuplicateMethodRole               = &Error{Code: CodeDuplicateMethodRole}
	ErrConflictingClassAnnotations       = &Error{Code: CodeConflictingClassAnnotations}
	ErrDuplicateClassRole                = &Error{Code: CodeDuplicateClassRole}
	ErrInvalidAccessTimeout              = &Error{Code: CodeInvalidAccessTimeout}
	ErrAccessTimeoutOverflow             = &Error{Code: CodeAccessTimeoutOverflow}
	ErrAsyncMissingMethodName            = &Error{Code: CodeAsyncMissingMethodName}
	ErrAsyncWildcardParams               = &Error{Code: CodeAsyncWildcardParams}
	ErrStatefulTimeoutOverflow           = &Error{Code: CodeStatefulTimeoutOverflow}
	ErrNegativeStatefulTimeoutAnnotation = &Error{Code: CodeNegativeStatefulTimeoutAnnotation}
	ErrNegativeStatefulTimeoutXML        = &Error{Code: CodeNegativeStatefulTimeoutXML}
)

// Code returns the code of the first *Error in err's chain, or "".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
