package attrib

import "strings"

// Wildcard names every method of a bean.
const Wildcard = "*"

// MethodElement selects methods of one bean. A nil Params leaves the
// parameters unconstrained; a non-nil empty Params matches only methods
// without parameters.
type MethodElement struct {
	BeanName  string
	Interface InterfaceType
	Name      string
	Params    []string
}

// ContainerTransaction assigns a transaction attribute to methods.
type ContainerTransaction struct {
	Attribute TxAttribute
	Methods   []MethodElement
}

// MethodPermission grants roles on methods, or marks them unchecked.
type MethodPermission struct {
	Roles     []string
	Unchecked bool
	Methods   []MethodElement
}

// ExcludeList denies access to methods.
type ExcludeList struct {
	Methods []MethodElement
}

// ActivitySessionMethod assigns an activity session attribute to methods.
type ActivitySessionMethod struct {
	Attribute ActivitySessionAttribute
	Methods   []MethodElement
}

// NamedMethod names a method inside a bean-scoped element.
type NamedMethod struct {
	Name   string
	Params []string
}

// ConcurrentMethod is a concurrent-method element of a singleton.
type ConcurrentMethod struct {
	Method        NamedMethod
	Lock          *LockType
	AccessTimeout *Timeout
}

// AsyncMethod marks methods asynchronous.
type AsyncMethod struct {
	Name   string
	Params []string
}

// eachMatch calls fn for every slot of methods that me selects through
// view, with the style of the match.
func eachMatch(me MethodElement, view InterfaceType, methods []*Method, fn func(k int, style Style)) {
	name := strings.TrimSpace(me.Name)
	if name == Wildcard {
		var style Style
		switch me.Interface {
		case Unspecified:
			style = WildcardNoFilter
		case view:
			style = WildcardFiltered
		default:
			return
		}
		for k := range methods {
			fn(k, style)
		}
		return
	}
	if me.Interface != Unspecified && me.Interface != view {
		return
	}
	for k, m := range methods {
		if m == nil || m.Name != name {
			continue
		}
		switch {
		case me.Params == nil:
			fn(k, NameOnly)
		case ParamsMatch(me.Params, m.Params):
			fn(k, NameAndParams)
		}
	}
}

// styleOf returns the style me would be applied with, ignoring matches.
func styleOf(me MethodElement) Style {
	switch {
	case strings.TrimSpace(me.Name) == Wildcard && me.Interface == Unspecified:
		return WildcardNoFilter
	case strings.TrimSpace(me.Name) == Wildcard:
		return WildcardFiltered
	case me.Params == nil:
		return NameOnly
	}
	return NameAndParams
}
