package ejbmeta

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by the Assembler.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrBeanNotFound indicates the module declares no bean with the
	// requested name.
	ErrBeanNotFound = errors.New("bean not found")

	// ErrNilModule indicates a nil module was passed to the Assembler.
	ErrNilModule = errors.New("nil module")

	// ErrNotAssembled indicates metadata that did not come from Assemble.
	ErrNotAssembled = errors.New("bean metadata was not produced by Assemble")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents invalid bean configuration: bad XML
	// rules, conflicting annotations or out-of-range timeouts.
	KindConfiguration = "configuration"

	// KindIdentity represents identity data the namer cannot work with.
	KindIdentity = "identity"

	// KindStore represents failures of the naming record store.
	KindStore = "store"

	// KindNotFound represents a missing bean or generated class.
	KindNotFound = "not_found"
)

// Error wraps a failure of one Assembler operation with the bean it
// concerned and the category of the failure.
//
// The underlying error stays reachable, so a configuration failure matches
// both an *Error of KindConfiguration and the *cfgerr.Error it wraps:
//
//	var cfg *cfgerr.Error
//	if errors.As(err, &cfg) {
//		log.Println(cfg.Code)
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Assembler.Assemble").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration).
	Kind string

	// Bean is the bean being processed, when known.
	Bean string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("ejbmeta: %s: %s", e.Op, e.Kind)
	case e.Bean != "":
		return fmt.Sprintf("ejbmeta: %s (%s) bean %s: %v", e.Op, e.Kind, e.Bean, e.Err)
	}
	return fmt.Sprintf("ejbmeta: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a target *Error by Kind, and by Op when the target sets one.
// Anything else is delegated to the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok && t.Kind != "" && e.Kind == t.Kind {
		if t.Op == "" || e.Op == t.Op {
			return true
		}
	}
	return errors.Is(e.Err, target)
}

func newError(op, kind, bean string, err error) *Error {
	return &Error{Op: op, Kind: kind, Bean: bean, Err: err}
}

// CloseWithLog closes closer and logs any failure at warning level. It is
// meant for defer statements, for example around a Redis-backed store:
//
//	defer ejbmeta.CloseWithLog(st, logger, "naming store")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
