package attrib

import (
	"log/slog"

	"github.com/zero-day-ai/ejbmeta/cfgerr"
)

// Bean describes the bean whose methods are being resolved.
type Bean struct {
	Name             string
	Module           string
	Kind             BeanKind
	ClassName        string
	MetadataComplete bool
	// BusinessMethods lists every business method across all views. It
	// disambiguates stateful lifecycle callbacks that share a name with a
	// business method.
	BusinessMethods []*Method
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for rule warnings and override traces.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAnnotations sets the annotation source consulted by the annotation
// phase. The default finds no annotations.
func WithAnnotations(src AnnotationSource) Option {
	return func(r *Resolver) {
		if src != nil {
			r.annotations = src
		}
	}
}

// Resolver merges XML rules and annotations for one bean. It holds no
// mutable state and may be shared across goroutines.
type Resolver struct {
	bean        Bean
	logger      *slog.Logger
	annotations AnnotationSource
}

// NewResolver returns a Resolver for bean.
func NewResolver(bean Bean, opts ...Option) *Resolver {
	r := &Resolver{
		bean:        bean,
		logger:      slog.Default(),
		annotations: NoAnnotations,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("bean", bean.Name)
	return r
}

// Bean returns the bean being resolved.
func (r *Resolver) Bean() Bean { return r.bean }

func (r *Resolver) isStatefulLifecycle(view InterfaceType) bool {
	return r.bean.Kind == Stateful && view == LifecycleCallback
}

// classOf returns the class whose class-level annotations apply to m.
func (r *Resolver) classOf(m *Method) string {
	if m != nil && m.DeclaringClass != "" {
		return m.DeclaringClass
	}
	return r.bean.ClassName
}

// targets reports whether a rule naming beanName applies to this bean.
// Rules without a bean name are logged and skipped.
func (r *Resolver) targets(beanName, rule string) bool {
	if beanName == "" {
		r.logger.Warn("assembly rule has no ejb-name and is ignored", "rule", rule)
		return false
	}
	return beanName == r.bean.Name
}

func (r *Resolver) configError(code, format string, args ...any) *cfgerr.Error {
	return cfgerr.New(code, format, args...).WithBean(r.bean.Name, r.bean.Module)
}
