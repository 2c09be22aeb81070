package attrib

import "sync"

// AnnotationKind names a source-level annotation the resolver asks about.
type AnnotationKind int

const (
	TransactionAttributeAnnotation AnnotationKind = iota + 1
	LockAnnotation
	AccessTimeoutAnnotation
	AsynchronousAnnotation
	DenyAllAnnotation
	PermitAllAnnotation
	RolesAllowedAnnotation
)

func (k AnnotationKind) String() string {
	switch k {
	case TransactionAttributeAnnotation:
		return "TransactionAttribute"
	case LockAnnotation:
		return "Lock"
	case AccessTimeoutAnnotation:
		return "AccessTimeout"
	case AsynchronousAnnotation:
		return "Asynchronous"
	case DenyAllAnnotation:
		return "DenyAll"
	case PermitAllAnnotation:
		return "PermitAll"
	case RolesAllowedAnnotation:
		return "RolesAllowed"
	}
	return "Unknown"
}

// Annotation is one annotation occurrence. Only the field matching Kind
// is meaningful.
type Annotation struct {
	Kind        AnnotationKind
	Transaction TxAttribute
	Lock        LockType
	Timeout     Timeout
	Roles       []string
}

// AnnotationSource answers annotation lookups for methods and classes.
type AnnotationSource interface {
	MethodAnnotation(m *Method, kind AnnotationKind) (Annotation, bool)
	ClassAnnotation(class string, kind AnnotationKind) (Annotation, bool)
}

type noAnnotations struct{}

func (noAnnotations) MethodAnnotation(*Method, AnnotationKind) (Annotation, bool) {
	return Annotation{}, false
}

func (noAnnotations) ClassAnnotation(string, AnnotationKind) (Annotation, bool) {
	return Annotation{}, false
}

// NoAnnotations is an AnnotationSource that never finds anything.
var NoAnnotations AnnotationSource = noAnnotations{}

// MapAnnotationSource is an AnnotationSource backed by precomputed maps.
// Methods are keyed by declaring class and MethodKey.
type MapAnnotationSource struct {
	mu      sync.RWMutex
	methods map[string]map[AnnotationKind]Annotation
	classes map[string]map[AnnotationKind]Annotation
}

// NewMapAnnotationSource returns an empty source.
func NewMapAnnotationSource() *MapAnnotationSource {
	return &MapAnnotationSource{
		methods: make(map[string]map[AnnotationKind]Annotation),
		classes: make(map[string]map[AnnotationKind]Annotation),
	}
}

func methodAnnotationKey(m *Method) string {
	return m.DeclaringClass + "#" + m.Key()
}

// AddMethod records a on m. A second annotation of the same kind replaces
// the first.
func (s *MapAnnotationSource) AddMethod(m *Method, a Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	put(s.methods, methodAnnotationKey(m), a)
}

// AddClass records a on class.
func (s *MapAnnotationSource) AddClass(class string, a Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	put(s.classes, class, a)
}

func put(m map[string]map[AnnotationKind]Annotation, key string, a Annotation) {
	byKind, ok := m[key]
	if !ok {
		byKind = make(map[AnnotationKind]Annotation)
		m[key] = byKind
	}
	byKind[a.Kind] = a
}

// MethodAnnotation implements AnnotationSource.
func (s *MapAnnotationSource) MethodAnnotation(m *Method, kind AnnotationKind) (Annotation, bool) {
	if m == nil {
		return Annotation{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.methods[methodAnnotationKey(m)][kind]
	return a, ok
}

// ClassAnnotation implements AnnotationSource.
func (s *MapAnnotationSource) ClassAnnotation(class string, kind AnnotationKind) (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.classes[class][kind]
	return a, ok
}
