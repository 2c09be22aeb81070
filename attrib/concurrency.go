package attrib

import (
	"context"
	"log/slog"
	"strings"
)

// concurrentStyle classifies a concurrent-method element. Wildcards
// ignore any parameters.
func concurrentStyle(nm NamedMethod) Style {
	switch {
	case strings.TrimSpace(nm.Name) == Wildcard:
		return WildcardNoFilter
	case nm.Params == nil:
		return NameOnly
	}
	return NameAndParams
}

// eachConcurrent calls fn for the slots a concurrent-method element
// selects. A name-and-params element selects at most one method.
func eachConcurrent(nm NamedMethod, methods []*Method, fn func(k int, style Style)) {
	style := concurrentStyle(nm)
	name := strings.TrimSpace(nm.Name)
	switch style {
	case WildcardNoFilter:
		for k := range methods {
			fn(k, style)
		}
	case NameOnly:
		for k, m := range methods {
			if m != nil && m.Name == name {
				fn(k, style)
			}
		}
	default:
		if k := FindMethod(NamedMethod{Name: name, Params: nm.Params}, methods); k >= 0 {
			fn(k, style)
		}
	}
}

// XMLLockTypes applies the lock of every concurrent-method element that
// carries one.
func (r *Resolver) XMLLockTypes(out *Resolved[LockType], methods []*Method, rules []ConcurrentMethod) {
	for _, cm := range rules {
		if cm.Lock == nil {
			continue
		}
		lock := *cm.Lock
		eachConcurrent(cm.Method, methods, func(k int, style Style) {
			out.apply(k, lock, style)
		})
	}
}

// AnnotationLockTypes fills the slots XML left unset from Lock
// annotations, defaulting to LockWrite.
func (r *Resolver) AnnotationLockTypes(out *Resolved[LockType], methods []*Method) {
	trace := r.logger.Enabled(context.Background(), slog.LevelDebug)
	for k, m := range methods {
		if out.IsSet(k) {
			if trace && m != nil && !r.bean.MetadataComplete {
				r.traceLockOverride(out.Value(k), m)
			}
			continue
		}
		if r.bean.MetadataComplete || m == nil {
			out.fill(k, LockWrite)
			continue
		}
		if a, ok := r.lockAnnotation(m); ok {
			out.fill(k, a.Lock)
			continue
		}
		out.fill(k, LockWrite)
	}
}

func (r *Resolver) lockAnnotation(m *Method) (Annotation, bool) {
	if a, ok := r.annotations.MethodAnnotation(m, LockAnnotation); ok {
		return a, true
	}
	return r.annotations.ClassAnnotation(r.classOf(m), LockAnnotation)
}

func (r *Resolver) traceLockOverride(xml LockType, m *Method) {
	a, ok := r.lockAnnotation(m)
	if !ok || a.Lock == xml {
		return
	}
	msg := "ejb-jar.xml overrides @Lock(WRITE) with a read lock; this may cause data integrity problems"
	if a.Lock == LockRead {
		msg = "ejb-jar.xml overrides @Lock(READ) with a write lock; this may deadlock"
	}
	r.logger.Debug(msg, "method", m.Key())
}

// XMLAccessTimeouts applies the access timeout of every concurrent-method
// element that carries one.
func (r *Resolver) XMLAccessTimeouts(out *Resolved[int64], methods []*Method, rules []ConcurrentMethod) error {
	for _, cm := range rules {
		if cm.AccessTimeout == nil {
			continue
		}
		ms, err := r.accessTimeout(*cm.AccessTimeout, strings.TrimSpace(cm.Method.Name), r.bean.ClassName)
		if err != nil {
			return err
		}
		eachConcurrent(cm.Method, methods, func(k int, style Style) {
			out.apply(k, ms, style)
		})
	}
	return nil
}

// AnnotationAccessTimeouts fills the slots XML left unset from
// AccessTimeout annotations. def is already in internal form.
func (r *Resolver) AnnotationAccessTimeouts(out *Resolved[int64], methods []*Method, def int64) error {
	for k, m := range methods {
		if out.IsSet(k) {
			continue
		}
		if r.bean.MetadataComplete || m == nil {
			out.fill(k, def)
			continue
		}
		a, ok := r.annotations.MethodAnnotation(m, AccessTimeoutAnnotation)
		if !ok {
			a, ok = r.annotations.ClassAnnotation(r.classOf(m), AccessTimeoutAnnotation)
		}
		if !ok {
			out.fill(k, def)
			continue
		}
		ms, err := r.accessTimeout(a.Timeout, m.Name, r.classOf(m))
		if err != nil {
			return err
		}
		out.fill(k, ms)
	}
	return nil
}
