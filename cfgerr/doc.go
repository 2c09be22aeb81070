// Package cfgerr provides the structured configuration error raised while
// resolving bean metadata.
//
// # Overview
//
// A configuration error is fatal to the deployment of one bean: an invalid
// annotation combination, a duplicate role, an out-of-range timeout, or an
// incomplete deployment descriptor element. Every error carries a stable
// message code so that a diagnostic layer can render a localized message,
// and the values that message needs (bean, method, class, offending value,
// limits) in Details.
//
// # Codes
//
//   - CodeConflictingMethodAnnotations (CNTR0150E)
//   - CodeDuplicateMethodRole (CNTR0151E)
//   - CodeConflictingClassAnnotations (CNTR0152E)
//   - CodeDuplicateClassRole (CNTR0153E)
//   - CodeInvalidAccessTimeout (CNTR0192E)
//   - CodeAccessTimeoutOverflow (CNTR0196E)
//   - CodeAsyncMissingMethodName (CNTR0203E)
//   - CodeAsyncWildcardParams (CNTR0204E)
//   - CodeStatefulTimeoutOverflow (CNTR0309E)
//   - CodeNegativeStatefulTimeoutAnnotation (CNTR0311E)
//   - CodeNegativeStatefulTimeoutXML (CNTR0312E)
//
// # Usage
//
//	err := cfgerr.New(cfgerr.CodeDuplicateMethodRole, "role %q is listed twice", role).
//	    WithBean("ClaimBean", "claims.jar").
//	    WithDetails(map[string]any{"method": "submit", "role": role})
//
// Check for a specific code:
//
//	if errors.Is(err, cfgerr.ErrDuplicateMethodRole) {
//	    // ...
//	}
//
// Or for any configuration error:
//
//	if errors.Is(err, cfgerr.ErrConfiguration) {
//	    // ...
//	}
package cfgerr
