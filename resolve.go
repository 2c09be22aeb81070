package ejbmeta

import (
	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/descriptor"
)

// rules are the assembly and bean-level rules of one bean in resolver form.
type rules struct {
	transactions []attrib.ContainerTransaction
	permissions  []attrib.MethodPermission
	excludes     []attrib.ExcludeList
	sessions     []attrib.ActivitySessionMethod
	concurrent   []attrib.ConcurrentMethod
	async        []attrib.AsyncMethod
}

func convertRules(mod *descriptor.Module, bean *descriptor.Bean) (*rules, error) {
	var (
		rs  rules
		err error
	)
	if rs.transactions, err = mod.Assembly.Transactions(); err != nil {
		return nil, err
	}
	if rs.permissions, err = mod.Assembly.Permissions(); err != nil {
		return nil, err
	}
	if rs.excludes, err = mod.Assembly.Excludes(); err != nil {
		return nil, err
	}
	if rs.sessions, err = mod.Assembly.Sessions(); err != nil {
		return nil, err
	}
	if rs.concurrent, err = bean.Concurrent(); err != nil {
		return nil, err
	}
	rs.async = bean.Async()
	return &rs, nil
}

// resolution is the output of resolve for one bean.
type resolution struct {
	methods         []MethodMetadata
	hasAsync        bool
	statefulTimeout *int64
}

// resolve runs every concern over every interface view of bean, XML first
// and annotations second.
func (a *Assembler) resolve(mod *descriptor.Module, bean *descriptor.Bean) (*resolution, error) {
	src, err := bean.AnnotationSource()
	if err != nil {
		return nil, err
	}
	rs, err := convertRules(mod, bean)
	if err != nil {
		return nil, err
	}

	desc := bean.Resolvable(mod)
	r := attrib.NewResolver(desc, attrib.WithLogger(a.logger), attrib.WithAnnotations(src))
	complete := desc.MetadataComplete
	bmt := bean.BeanManagedTransactions()
	bmas := bean.BeanManagedActivitySessions()
	locking := desc.Kind == attrib.Singleton && bean.ContainerConcurrency()
	timed := (desc.Kind == attrib.Singleton || desc.Kind == attrib.Stateful) && bean.ContainerConcurrency()

	if bmt {
		r.CheckBMTFromXML(rs.transactions)
	}
	if bmas {
		r.CheckBMASFromXML(rs.sessions)
	}

	defaultTimeout := attrib.WaitForever
	if timed && bean.DefaultAccessTimeout != nil {
		t, err := bean.DefaultAccessTimeout.Timeout()
		if err != nil {
			return nil, err
		}
		if defaultTimeout, err = r.AccessTimeout(t); err != nil {
			return nil, err
		}
	}

	out := &resolution{}
	for _, v := range bean.ViewMethods() {
		n := len(v.Methods)

		tx := attrib.NewResolved[attrib.TxAttribute](n)
		if bmt {
			if !complete {
				r.CheckBMTFromAnnotations(v.Methods)
			}
			names, sigs := signatures(v.Methods)
			attrib.CheckTxAttrs(tx, names, sigs, []string{attrib.Wildcard}, []string{""}, attrib.TxBeanManaged)
		} else {
			r.XMLTransactions(tx, v.Interface, v.Methods, rs.transactions)
			r.AnnotationTransactions(tx, v.Interface, v.Methods)
		}

		sessions := attrib.NewResolved[attrib.ActivitySessionAttribute](n)
		if bmas {
			attrib.BeanManagedActivitySessions(sessions)
		} else {
			r.XMLActivitySessions(sessions, v.Interface, v.Methods, rs.sessions)
		}

		perms := attrib.NewPermissions(n)
		r.XMLPermissions(perms, v.Interface, v.Methods, rs.permissions)
		r.XMLExcludeList(perms, v.Interface, v.Methods, rs.excludes)
		if !complete {
			if err := r.AnnotationSecurity(perms, v.Methods); err != nil {
				return nil, err
			}
		}

		async := attrib.NewResolved[bool](n)
		if v.Interface == attrib.Remote || v.Interface == attrib.Local {
			found, err := r.XMLAsync(async, v.Interface, v.Methods, rs.async)
			if err != nil {
				return nil, err
			}
			if !complete && r.AnnotationAsync(async, v.Interface, v.Methods) {
				found = true
			}
			out.hasAsync = out.hasAsync || found
		}

		// Lifecycle callbacks run outside the bean's lock.
		concurrent := v.Interface != attrib.LifecycleCallback
		var locks *attrib.Resolved[attrib.LockType]
		if locking && concurrent {
			locks = attrib.NewResolved[attrib.LockType](n)
			r.XMLLockTypes(locks, v.Methods, rs.concurrent)
			r.AnnotationLockTypes(locks, v.Methods)
		}
		var timeouts *attrib.Resolved[int64]
		if timed && concurrent {
			timeouts = attrib.NewResolved[int64](n)
			if err := r.XMLAccessTimeouts(timeouts, v.Methods, rs.concurrent); err != nil {
				return nil, err
			}
			if err := r.AnnotationAccessTimeouts(timeouts, v.Methods, defaultTimeout); err != nil {
				return nil, err
			}
		}

		for k, m := range v.Methods {
			mm := MethodMetadata{
				Interface:       v.Interface,
				Method:          m,
				Transaction:     tx.Value(k),
				ActivitySession: sessions.Value(k),
				Permission:      perms.Get(k),
				Asynchronous:    async.Value(k),
			}
			if locks != nil {
				lock := locks.Value(k)
				mm.Lock = &lock
			}
			if timeouts != nil {
				ms := timeouts.Value(k)
				mm.AccessTimeout = &ms
			}
			out.methods = append(out.methods, mm)
		}
	}

	if desc.Kind == attrib.Stateful {
		if out.statefulTimeout, err = statefulTimeout(r, bean, complete); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// statefulTimeout resolves the bean's stateful session timeout. The
// descriptor value wins over the class annotation.
func statefulTimeout(r *attrib.Resolver, bean *descriptor.Bean, complete bool) (*int64, error) {
	t, fromAnnotation := bean.StatefulTimeout, false
	if t == nil && !complete && bean.ClassAnnotations != nil {
		t, fromAnnotation = bean.ClassAnnotations.StatefulTimeout, true
	}
	if t == nil {
		return nil, nil
	}
	conv, err := t.Timeout()
	if err != nil {
		return nil, err
	}
	ms, err := r.StatefulTimeout(conv, fromAnnotation)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

func signatures(methods []*attrib.Method) (names, sigs []string) {
	names = make([]string, len(methods))
	sigs = make([]string, len(methods))
	for i, m := range methods {
		if m == nil {
			continue
		}
		names[i] = m.Name
		sigs[i] = attrib.MethodSignatureOnly(m)
	}
	return names, sigs
}
