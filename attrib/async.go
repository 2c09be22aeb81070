package attrib

import (
	"strings"

	"github.com/zero-day-ai/ejbmeta/cfgerr"
)

func (r *Resolver) asyncApplies(view InterfaceType) bool {
	return r.bean.Kind.IsSession() && view != ServiceEndpoint
}

// XMLAsync marks the methods named by async-method elements. It reports
// whether any method became asynchronous. A wildcard marks every method
// and ends processing.
func (r *Resolver) XMLAsync(out *Resolved[bool], view InterfaceType, methods []*Method, rules []AsyncMethod) (bool, error) {
	if !r.asyncApplies(view) {
		return false, nil
	}
	found := false
	for _, am := range rules {
		name := strings.TrimSpace(am.Name)
		if name == "" {
			return found, r.configError(cfgerr.CodeAsyncMissingMethodName,
				"async method declared without a required method-name")
		}
		if name == Wildcard && am.Params != nil {
			return found, r.configError(cfgerr.CodeAsyncWildcardParams,
				"cannot specify parameters with a wildcard method-name for async methods").
				WithDetails(map[string]any{"params": strings.Join(am.Params, ",")})
		}
		if name == Wildcard {
			for k := 0; k < out.Len(); k++ {
				out.force(k, true)
			}
			return true, nil
		}
		for k, m := range methods {
			if m == nil || m.Name != name {
				continue
			}
			if am.Params == nil || ParamsMatch(am.Params, m.Params) {
				out.force(k, true)
				found = true
			}
		}
	}
	return found, nil
}

// AnnotationAsync marks methods carrying an Asynchronous annotation on
// the method or its class. Slots already marked stay marked.
func (r *Resolver) AnnotationAsync(out *Resolved[bool], view InterfaceType, methods []*Method) bool {
	if view == ServiceEndpoint {
		return false
	}
	found := false
	for k, m := range methods {
		if m == nil || out.Value(k) {
			continue
		}
		_, ok := r.annotations.MethodAnnotation(m, AsynchronousAnnotation)
		if !ok {
			_, ok = r.annotations.ClassAnnotation(r.classOf(m), AsynchronousAnnotation)
		}
		if ok {
			out.force(k, true)
			found = true
		}
	}
	return found
}
