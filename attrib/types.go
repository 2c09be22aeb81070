package attrib

import (
	"fmt"
	"strings"
)

// InterfaceType classifies the view a method is invoked through.
type InterfaceType int

const (
	// Unspecified matches every view when used as a rule filter.
	Unspecified InterfaceType = iota
	Home
	Remote
	LocalHome
	Local
	ServiceEndpoint
	Timer
	MessageEndpoint
	LifecycleCallback
)

var interfaceNames = [...]string{
	Unspecified:       "Unspecified",
	Home:              "Home",
	Remote:            "Remote",
	LocalHome:         "LocalHome",
	Local:             "Local",
	ServiceEndpoint:   "ServiceEndpoint",
	Timer:             "Timer",
	MessageEndpoint:   "MessageEndpoint",
	LifecycleCallback: "LifecycleCallback",
}

func (t InterfaceType) String() string {
	if t >= 0 && int(t) < len(interfaceNames) {
		return interfaceNames[t]
	}
	return fmt.Sprintf("InterfaceType(%d)", int(t))
}

// ParseInterfaceType parses the method-intf spelling ("Local",
// "LifecycleCallback", ...). The empty string is Unspecified.
func ParseInterfaceType(s string) (InterfaceType, error) {
	if s == "" {
		return Unspecified, nil
	}
	for i, name := range interfaceNames {
		if strings.EqualFold(name, s) {
			return InterfaceType(i), nil
		}
	}
	return Unspecified, fmt.Errorf("unknown method interface %q", s)
}

// BeanKind is the kind of bean whose methods are being resolved.
type BeanKind int

const (
	Stateless BeanKind = iota + 1
	Stateful
	Singleton
	Entity
	MessageDriven
	Managed
)

// IsSession reports whether k is a session bean kind.
func (k BeanKind) IsSession() bool {
	return k == Stateless || k == Stateful || k == Singleton
}

func (k BeanKind) String() string {
	switch k {
	case Stateless:
		return "Stateless"
	case Stateful:
		return "Stateful"
	case Singleton:
		return "Singleton"
	case Entity:
		return "Entity"
	case MessageDriven:
		return "MessageDriven"
	case Managed:
		return "Managed"
	}
	return fmt.Sprintf("BeanKind(%d)", int(k))
}

// TxAttribute is a container-managed transaction attribute.
type TxAttribute int

const (
	TxNotSupported TxAttribute = iota
	TxBeanManaged
	TxRequired
	TxSupports
	TxRequiresNew
	TxMandatory
	TxNever
)

var txNames = [...]string{
	TxNotSupported: "TX_NOT_SUPPORTED",
	TxBeanManaged:  "TX_BEAN_MANAGED",
	TxRequired:     "TX_REQUIRED",
	TxSupports:     "TX_SUPPORTS",
	TxRequiresNew:  "TX_REQUIRES_NEW",
	TxMandatory:    "TX_MANDATORY",
	TxNever:        "TX_NEVER",
}

func (a TxAttribute) String() string {
	if a >= 0 && int(a) < len(txNames) {
		return txNames[a]
	}
	return fmt.Sprintf("TxAttribute(%d)", int(a))
}

// ParseTxAttribute accepts "Required", "REQUIRES_NEW", "TX_NEVER",
// "NotSupported" and similar spellings.
func ParseTxAttribute(s string) (TxAttribute, error) {
	key := canonical(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "TX_"))
	for i, name := range txNames {
		if canonical(strings.TrimPrefix(name, "TX_")) == key {
			return TxAttribute(i), nil
		}
	}
	return TxRequired, fmt.Errorf("unknown transaction attribute %q", s)
}

// LockType is the container-managed concurrency lock of a method.
type LockType int

const (
	LockWrite LockType = iota
	LockRead
)

func (l LockType) String() string {
	if l == LockRead {
		return "READ"
	}
	return "WRITE"
}

// ParseLockType accepts "Read" or "Write" in any case.
func ParseLockType(s string) (LockType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "READ":
		return LockRead, nil
	case "WRITE":
		return LockWrite, nil
	}
	return LockWrite, fmt.Errorf("unknown lock type %q", s)
}

// ActivitySessionAttribute is the activity session demarcation of a method.
type ActivitySessionAttribute int

const (
	ASUnknown ActivitySessionAttribute = iota
	ASBeanManaged
	ASRequired
	ASSupports
	ASRequiresNew
	ASMandatory
	ASNever
	ASNotSupported
)

var asNames = [...]string{
	ASUnknown:      "AS_UNKNOWN",
	ASBeanManaged:  "AS_BEAN_MANAGED",
	ASRequired:     "AS_REQUIRED",
	ASSupports:     "AS_SUPPORTS",
	ASRequiresNew:  "AS_REQUIRES_NEW",
	ASMandatory:    "AS_MANDATORY",
	ASNever:        "AS_NEVER",
	ASNotSupported: "AS_NOT_SUPPORTED",
}

func (a ActivitySessionAttribute) String() string {
	if a >= 0 && int(a) < len(asNames) {
		return asNames[a]
	}
	return fmt.Sprintf("ActivitySessionAttribute(%d)", int(a))
}

// ParseActivitySessionAttribute accepts "Required", "AS_NEVER" and similar.
func ParseActivitySessionAttribute(s string) (ActivitySessionAttribute, error) {
	key := canonical(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "AS_"))
	for i, name := range asNames {
		if i == int(ASUnknown) {
			continue
		}
		if canonical(strings.TrimPrefix(name, "AS_")) == key {
			return ActivitySessionAttribute(i), nil
		}
	}
	return ASUnknown, fmt.Errorf("unknown activity session attribute %q", s)
}

// IsolationLevel is a JDBC transaction isolation level.
type IsolationLevel int

const (
	IsolationNone            IsolationLevel = 0
	IsolationReadUncommitted IsolationLevel = 1
	IsolationReadCommitted   IsolationLevel = 2
	IsolationRepeatableRead  IsolationLevel = 4
	IsolationSerializable    IsolationLevel = 8
)

func (l IsolationLevel) String() string {
	switch l {
	case IsolationNone:
		return "TRANSACTION_NONE"
	case IsolationReadUncommitted:
		return "TRANSACTION_READ_UNCOMMITTED"
	case IsolationReadCommitted:
		return "TRANSACTION_READ_COMMITTED"
	case IsolationRepeatableRead:
		return "TRANSACTION_REPEATABLE_READ"
	case IsolationSerializable:
		return "TRANSACTION_SERIALIZABLE"
	}
	return "-- ILLEGAL ISOLATION LEVEL --"
}

// canonical upper-cases s and drops '_', '-' and spaces.
func canonical(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToUpper(s))
}

// Method is one target method. Params holds parameter type names in the
// runtime form ("int", "[B", "[Ljava.lang.String;", "java.util.List").
type Method struct {
	Name           string
	Params         []string
	ReturnType     string
	DeclaringClass string
}

// Key returns the canonical method key, name(p1,p2).
func (m *Method) Key() string {
	return MethodKey(m.Name, m.Params)
}

func (m *Method) String() string {
	if m == nil {
		return "<nil>"
	}
	if m.DeclaringClass == "" {
		return m.Key()
	}
	return m.DeclaringClass + "." + m.Key()
}
