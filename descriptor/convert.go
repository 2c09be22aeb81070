package descriptor

import (
	"fmt"

	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/naming"
)

const (
	containerManaged = "container"
	beanManaged      = "bean"
)

// ModuleVersion returns the naming era, defaulting to 3.
func (m *Module) ModuleVersion() naming.ModuleVersion {
	if m.Version == 0 {
		return naming.Version3
	}
	return naming.ModuleVersion(m.Version)
}

// BeanType returns the naming tag of the bean type.
func (b *Bean) BeanType() (naming.BeanType, error) {
	return naming.ParseBeanType(b.Type)
}

// Kind returns the resolver kind of the bean.
func (b *Bean) Kind() attrib.BeanKind {
	t, _ := b.BeanType()
	switch t {
	case naming.Stateful:
		return attrib.Stateful
	case naming.Singleton:
		return attrib.Singleton
	case naming.BeanManaged, naming.ContainerManaged:
		return attrib.Entity
	case naming.MessageDriven:
		return attrib.MessageDriven
	case naming.ManagedBean:
		return attrib.Managed
	}
	return attrib.Stateless
}

// BeanManagedTransactions reports whether the bean demarcates its own
// transactions.
func (b *Bean) BeanManagedTransactions() bool { return b.TransactionType == beanManaged }

// BeanManagedActivitySessions reports whether the bean demarcates its own
// activity sessions.
func (b *Bean) BeanManagedActivitySessions() bool { return b.ActivitySessionType == beanManaged }

// ContainerConcurrency reports whether the container manages concurrency.
func (b *Bean) ContainerConcurrency() bool { return b.ConcurrencyManagement != beanManaged }

// Identity returns the naming identity of the bean in era v.
func (b *Bean) Identity(v naming.ModuleVersion) (naming.Identity, error) {
	t, err := b.BeanType()
	if err != nil {
		return naming.Identity{}, err
	}
	id := naming.Identity{
		BeanName:       b.Name,
		Type:           t,
		Version:        v,
		RemoteHome:     b.RemoteHome,
		Remote:         b.Remote,
		LocalHome:      b.LocalHome,
		Local:          b.Local,
		BusinessRemote: b.BusinessRemote,
		BusinessLocal:  b.BusinessLocal,
		BeanClass:      b.Class,
		PrimaryKey:     b.PrimaryKey,
	}
	return id, id.Validate()
}

// Resolvable returns the resolver view of the bean within mod.
func (b *Bean) Resolvable(mod *Module) attrib.Bean {
	return attrib.Bean{
		Name:             b.Name,
		Module:           mod.Name,
		Kind:             b.Kind(),
		ClassName:        b.Class,
		MetadataComplete: mod.MetadataComplete || b.MetadataComplete,
		BusinessMethods:  b.BusinessMethods(),
	}
}

type view struct {
	iface   attrib.InterfaceType
	methods *[]Method
}

func (b *Bean) views() []view {
	v := &b.Methods
	return []view{
		{attrib.Remote, &v.Remote},
		{attrib.Home, &v.Home},
		{attrib.Local, &v.Local},
		{attrib.LocalHome, &v.LocalHome},
		{attrib.ServiceEndpoint, &v.ServiceEndpoint},
		{attrib.Timer, &v.Timer},
		{attrib.MessageEndpoint, &v.MessageEndpoint},
		{attrib.LifecycleCallback, &v.Lifecycle},
	}
}

// ViewMethods is the method list of one interface view.
type ViewMethods struct {
	Interface attrib.InterfaceType
	Methods   []*attrib.Method
}

// ViewMethods returns the non-empty views of the bean in a fixed order.
func (b *Bean) ViewMethods() []ViewMethods {
	var out []ViewMethods
	for _, v := range b.views() {
		if len(*v.methods) == 0 {
			continue
		}
		out = append(out, ViewMethods{Interface: v.iface, Methods: b.methods(*v.methods)})
	}
	return out
}

// BusinessMethods returns the remote and local methods.
func (b *Bean) BusinessMethods() []*attrib.Method {
	return append(b.methods(b.Methods.Remote), b.methods(b.Methods.Local)...)
}

func (b *Bean) methods(list []Method) []*attrib.Method {
	out := make([]*attrib.Method, 0, len(list))
	for _, m := range list {
		out = append(out, b.method(m))
	}
	return out
}

func (b *Bean) method(m Method) *attrib.Method {
	class := m.Class
	if class == "" {
		class = b.Class
	}
	return &attrib.Method{
		Name:           m.Name,
		Params:         m.Params.Strings(),
		ReturnType:     m.Return,
		DeclaringClass: class,
	}
}

// AnnotationSource collects the method and class annotations of the bean.
func (b *Bean) AnnotationSource() (*attrib.MapAnnotationSource, error) {
	src := attrib.NewMapAnnotationSource()
	for _, v := range b.views() {
		for _, m := range *v.methods {
			if m.Annotations == nil {
				continue
			}
			am := b.method(m)
			if err := m.Annotations.each(m.Name, func(a attrib.Annotation) { src.AddMethod(am, a) }); err != nil {
				return nil, err
			}
		}
	}
	if b.ClassAnnotations != nil {
		err := b.ClassAnnotations.each(b.Class, func(a attrib.Annotation) { src.AddClass(b.Class, a) })
		if err != nil {
			return nil, err
		}
	}
	return src, nil
}

// each converts every annotation present and passes it to add.
func (a *Annotations) each(where string, add func(attrib.Annotation)) error {
	if a.Transaction != "" {
		tx, err := attrib.ParseTxAttribute(a.Transaction)
		if err != nil {
			return annotationError(where, err)
		}
		add(attrib.Annotation{Kind: attrib.TransactionAttributeAnnotation, Transaction: tx})
	}
	if a.Lock != "" {
		lock, err := attrib.ParseLockType(a.Lock)
		if err != nil {
			return annotationError(where, err)
		}
		add(attrib.Annotation{Kind: attrib.LockAnnotation, Lock: lock})
	}
	if a.AccessTimeout != nil {
		t, err := a.AccessTimeout.Timeout()
		if err != nil {
			return annotationError(where, err)
		}
		add(attrib.Annotation{Kind: attrib.AccessTimeoutAnnotation, Timeout: t})
	}
	if a.Asynchronous {
		add(attrib.Annotation{Kind: attrib.AsynchronousAnnotation})
	}
	if a.DenyAll {
		add(attrib.Annotation{Kind: attrib.DenyAllAnnotation})
	}
	if a.PermitAll {
		add(attrib.Annotation{Kind: attrib.PermitAllAnnotation})
	}
	if a.RolesAllowed != nil {
		add(attrib.Annotation{Kind: attrib.RolesAllowedAnnotation, Roles: append([]string{}, a.RolesAllowed...)})
	}
	return nil
}

func annotationError(where string, err error) error {
	if where == "" {
		return err
	}
	return fmt.Errorf("%s: %w", where, err)
}

// Timeout converts t to the resolver form.
func (t *Timeout) Timeout() (attrib.Timeout, error) {
	unit, err := attrib.ParseTimeUnit(t.Unit)
	if err != nil {
		return attrib.Timeout{}, err
	}
	return attrib.Timeout{Value: t.Value, Unit: unit}, nil
}

// Concurrent converts the concurrent-method elements of the bean.
func (b *Bean) Concurrent() ([]attrib.ConcurrentMethod, error) {
	out := make([]attrib.ConcurrentMethod, 0, len(b.ConcurrentMethods))
	for _, cm := range b.ConcurrentMethods {
		c := attrib.ConcurrentMethod{
			Method: attrib.NamedMethod{Name: cm.Method.Name, Params: cm.Method.Params.Strings()},
		}
		if cm.Lock != "" {
			lock, err := attrib.ParseLockType(cm.Lock)
			if err != nil {
				return nil, fmt.Errorf("concurrent method %s: %w", cm.Method.Name, err)
			}
			c.Lock = &lock
		}
		if cm.AccessTimeout != nil {
			t, err := cm.AccessTimeout.Timeout()
			if err != nil {
				return nil, fmt.Errorf("concurrent method %s: %w", cm.Method.Name, err)
			}
			c.AccessTimeout = &t
		}
		out = append(out, c)
	}
	return out, nil
}

// Async converts the async-method elements of the bean.
func (b *Bean) Async() []attrib.AsyncMethod {
	out := make([]attrib.AsyncMethod, 0, len(b.AsyncMethods))
	for _, am := range b.AsyncMethods {
		out = append(out, attrib.AsyncMethod{Name: am.Name, Params: am.Params.Strings()})
	}
	return out
}

func (me MethodElement) convert() (attrib.MethodElement, error) {
	iface, err := attrib.ParseInterfaceType(me.Interface)
	if err != nil {
		return attrib.MethodElement{}, err
	}
	return attrib.MethodElement{
		BeanName:  me.Bean,
		Interface: iface,
		Name:      me.Name,
		Params:    me.Params.Strings(),
	}, nil
}

func convertElements(list []MethodElement) ([]attrib.MethodElement, error) {
	out := make([]attrib.MethodElement, 0, len(list))
	for _, me := range list {
		c, err := me.convert()
		if err != nil {
			return nil, fmt.Errorf("method %s of bean %s: %w", me.Name, me.Bean, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Transactions converts the container-transaction rules.
func (a *Assembly) Transactions() ([]attrib.ContainerTransaction, error) {
	out := make([]attrib.ContainerTransaction, 0, len(a.ContainerTransactions))
	for _, ct := range a.ContainerTransactions {
		attr, err := attrib.ParseTxAttribute(ct.Attribute)
		if err != nil {
			return nil, fmt.Errorf("container transaction: %w", err)
		}
		methods, err := convertElements(ct.Methods)
		if err != nil {
			return nil, fmt.Errorf("container transaction: %w", err)
		}
		out = append(out, attrib.ContainerTransaction{Attribute: attr, Methods: methods})
	}
	return out, nil
}

// Permissions converts the method-permission rules.
func (a *Assembly) Permissions() ([]attrib.MethodPermission, error) {
	out := make([]attrib.MethodPermission, 0, len(a.MethodPermissions))
	for _, mp := range a.MethodPermissions {
		methods, err := convertElements(mp.Methods)
		if err != nil {
			return nil, fmt.Errorf("method permission: %w", err)
		}
		out = append(out, attrib.MethodPermission{Roles: mp.Roles, Unchecked: mp.Unchecked, Methods: methods})
	}
	return out, nil
}

// Excludes converts the exclude list.
func (a *Assembly) Excludes() ([]attrib.ExcludeList, error) {
	if len(a.ExcludeList) == 0 {
		return nil, nil
	}
	methods, err := convertElements(a.ExcludeList)
	if err != nil {
		return nil, fmt.Errorf("exclude list: %w", err)
	}
	return []attrib.ExcludeList{{Methods: methods}}, nil
}

// Sessions converts the activity-session rules.
func (a *Assembly) Sessions() ([]attrib.ActivitySessionMethod, error) {
	out := make([]attrib.ActivitySessionMethod, 0, len(a.ActivitySessions))
	for _, as := range a.ActivitySessions {
		attr, err := attrib.ParseActivitySessionAttribute(as.Attribute)
		if err != nil {
			return nil, fmt.Errorf("activity session: %w", err)
		}
		methods, err := convertElements(as.Methods)
		if err != nil {
			return nil, fmt.Errorf("activity session: %w", err)
		}
		out = append(out, attrib.ActivitySessionMethod{Attribute: attr, Methods: methods})
	}
	return out, nil
}
