package attrib

// Style ranks how specifically an XML rule names a method. A rule of a
// higher style overrides one of a lower style; equal styles go to the
// rule declared later.
type Style int

const (
	StyleNone Style = iota
	// WildcardNoFilter is "*" with no interface filter.
	WildcardNoFilter
	// WildcardFiltered is "*" restricted to one interface.
	WildcardFiltered
	// NameOnly names a method without parameters.
	NameOnly
	// NameAndParams names a method and its parameter types.
	NameAndParams
)

type slot[T any] struct {
	value T
	set   bool
	style Style
}

// Resolved accumulates one value per method slot. The XML phase writes
// through apply, which honours Style precedence. The annotation phase
// writes through fill, which only touches unset slots.
type Resolved[T any] struct {
	slots []slot[T]
}

// NewResolved returns an accumulator with n unset slots.
func NewResolved[T any](n int) *Resolved[T] {
	return &Resolved[T]{slots: make([]slot[T], n)}
}

// Len returns the number of slots.
func (r *Resolved[T]) Len() int { return len(r.slots) }

// Get returns the value of slot i and whether it was set.
func (r *Resolved[T]) Get(i int) (T, bool) {
	s := r.slots[i]
	return s.value, s.set
}

// Value returns the value of slot i, or the zero value when unset.
func (r *Resolved[T]) Value(i int) T { return r.slots[i].value }

// IsSet reports whether slot i holds a value.
func (r *Resolved[T]) IsSet(i int) bool { return r.slots[i].set }

// Style returns the style of the XML rule that last wrote slot i.
func (r *Resolved[T]) Style(i int) Style { return r.slots[i].style }

// Values returns a copy of every slot value.
func (r *Resolved[T]) Values() []T {
	out := make([]T, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.value
	}
	return out
}

// Seed presets slot i as if a caller had resolved it earlier. Seeded
// slots are overridden by any XML rule and kept by the annotation phase.
func (r *Resolved[T]) Seed(i int, v T) {
	r.slots[i] = slot[T]{value: v, set: true}
}

func (r *Resolved[T]) apply(i int, v T, style Style) bool {
	s := &r.slots[i]
	if style < s.style {
		return false
	}
	s.value, s.set, s.style = v, true, style
	return true
}

func (r *Resolved[T]) fill(i int, v T) bool {
	s := &r.slots[i]
	if s.set {
		return false
	}
	s.value, s.set = v, true
	return true
}

// force overwrites slot i regardless of style.
func (r *Resolved[T]) force(i int, v T) {
	r.slots[i].value, r.slots[i].set = v, true
}
