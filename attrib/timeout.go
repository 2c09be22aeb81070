package attrib

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/zero-day-ai/ejbmeta/cfgerr"
)

// TimeUnit is the unit of a Timeout value. The zero value is Milliseconds.
type TimeUnit int

const (
	Milliseconds TimeUnit = iota
	Nanoseconds
	Microseconds
	Seconds
	Minutes
	Hours
	Days
)

// Internal timeout values.
const (
	// WaitForever is the internal form of -1.
	WaitForever int64 = 0
	// NoWait is the internal form of 0.
	NoWait int64 = 1
)

var unitNames = [...]string{
	Milliseconds: "MILLISECONDS",
	Nanoseconds:  "NANOSECONDS",
	Microseconds: "MICROSECONDS",
	Seconds:      "SECONDS",
	Minutes:      "MINUTES",
	Hours:        "HOURS",
	Days:         "DAYS",
}

func (u TimeUnit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// Duration returns the length of one u.
func (u TimeUnit) Duration() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Microseconds:
		return time.Microsecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	}
	return time.Millisecond
}

// ParseTimeUnit accepts "Seconds", "SECONDS", "ms", "s" and similar. The
// empty string is Milliseconds.
func ParseTimeUnit(s string) (TimeUnit, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch key {
	case "", "MS":
		return Milliseconds, nil
	case "NS":
		return Nanoseconds, nil
	case "US":
		return Microseconds, nil
	case "S":
		return Seconds, nil
	case "M":
		return Minutes, nil
	case "H":
		return Hours, nil
	case "D":
		return Days, nil
	}
	for i, name := range unitNames {
		if name == key {
			return TimeUnit(i), nil
		}
	}
	return Milliseconds, fmt.Errorf("unknown time unit %q", s)
}

// Timeout is a timeout as written in configuration.
type Timeout struct {
	Value int64
	Unit  TimeUnit
}

func (t Timeout) String() string {
	return fmt.Sprintf("%d %s", t.Value, t.Unit)
}

// positiveMillis converts v > 0 to milliseconds. ok is false when the
// result does not fit in an int64. A value that rounds down to zero
// becomes 1 so it is never mistaken for WaitForever.
func positiveMillis(v int64, u TimeUnit) (ms int64, ok bool) {
	switch u {
	case Nanoseconds, Microseconds:
		ms = v / int64(time.Millisecond/u.Duration())
	default:
		factor := int64(u.Duration() / time.Millisecond)
		if v > math.MaxInt64/factor {
			return 0, false
		}
		ms = v * factor
	}
	if ms == 0 {
		ms = 1
	}
	return ms, true
}

// internal maps a validated timeout to its internal form.
func (t Timeout) internal() (int64, bool) {
	switch {
	case t.Value > 0:
		return positiveMillis(t.Value, t.Unit)
	case t.Value == 0:
		return NoWait, true
	}
	return WaitForever, true
}

// accessTimeout validates and converts an access timeout for method of
// class.
func (r *Resolver) accessTimeout(t Timeout, method, class string) (int64, error) {
	details := map[string]any{"method": method, "class": class, "value": t.Value, "unit": t.Unit.String()}
	if t.Value < -1 || t.Value == math.MaxInt64 {
		return 0, r.configError(cfgerr.CodeInvalidAccessTimeout,
			"access timeout value %d is not valid for method %s of class %s; it must be -1 or greater and less than %d",
			t.Value, method, class, int64(math.MaxInt64)).
			WithDetails(details).WithDetails(map[string]any{"limit": int64(math.MaxInt64)})
	}
	ms, ok := t.internal()
	if !ok {
		return 0, r.configError(cfgerr.CodeAccessTimeoutOverflow,
			"conversion of access timeout value %d %s to milliseconds overflows", t.Value, t.Unit).
			WithDetails(details)
	}
	return ms, nil
}

// AccessTimeout validates t and returns its internal form. It serves
// bean-wide defaults that do not belong to one method.
func (r *Resolver) AccessTimeout(t Timeout) (int64, error) {
	return r.accessTimeout(t, Wildcard, r.bean.ClassName)
}

// StatefulTimeout converts a stateful session timeout to its internal
// form: milliseconds for positive values, NoWait for 0 and WaitForever
// for -1. fromAnnotation selects the error code for other negatives.
func (r *Resolver) StatefulTimeout(t Timeout, fromAnnotation bool) (int64, error) {
	details := map[string]any{"value": t.Value, "unit": t.Unit.String()}
	switch {
	case t.Value > 0:
		ms, ok := positiveMillis(t.Value, t.Unit)
		if !ok {
			return 0, r.configError(cfgerr.CodeStatefulTimeoutOverflow,
				"conversion of stateful session timeout value %d %s to milliseconds overflows", t.Value, t.Unit).
				WithDetails(details)
		}
		return ms, nil
	case t.Value == 0:
		return NoWait, nil
	case t.Value == -1:
		return WaitForever, nil
	}
	code := cfgerr.CodeNegativeStatefulTimeoutXML
	if fromAnnotation {
		code = cfgerr.CodeNegativeStatefulTimeoutAnnotation
	}
	return 0, r.configError(code, "stateful session timeout value %d %s is negative", t.Value, t.Unit).
		WithDetails(details)
}
