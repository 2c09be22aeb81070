package descriptor

import (
	"errors"
	"fmt"

	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/naming"
)

// Validate checks names, enum spellings and bean name uniqueness. All
// problems are reported together; the result wraps ErrInvalid.
func (m *Module) Validate() error {
	var errs []error
	if m.Name == "" {
		errs = append(errs, errors.New("module name is required"))
	}
	if m.Version != 0 && !naming.ModuleVersion(m.Version).IsValid() {
		errs = append(errs, fmt.Errorf("module version %d is not 1, 2 or 3", m.Version))
	}

	seen := make(map[string]bool, len(m.Beans))
	for i := range m.Beans {
		b := &m.Beans[i]
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("duplicate bean name %q", b.Name))
		}
		seen[b.Name] = true
		for _, err := range b.validate() {
			errs = append(errs, fmt.Errorf("bean %q: %w", b.Name, err))
		}
	}
	errs = append(errs, m.Assembly.validate()...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (b *Bean) validate() []error {
	var errs []error
	if b.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if _, err := naming.ParseBeanType(b.Type); err != nil {
		errs = append(errs, err)
	}
	if b.Class == "" {
		errs = append(errs, errors.New("class is required"))
	}
	for field, v := range map[string]string{
		"transaction_type":       b.TransactionType,
		"activity_session_type":  b.ActivitySessionType,
		"concurrency_management": b.ConcurrencyManagement,
	} {
		if v != "" && v != containerManaged && v != beanManaged {
			errs = append(errs, fmt.Errorf("%s %q is not %q or %q", field, v, containerManaged, beanManaged))
		}
	}

	for _, view := range b.views() {
		for _, m := range *view.methods {
			if m.Name == "" {
				errs = append(errs, fmt.Errorf("%s method without a name", view.iface))
			}
			if m.Annotations != nil {
				if err := m.Annotations.each("", func(attrib.Annotation) {}); err != nil {
					errs = append(errs, fmt.Errorf("%s method %s: %w", view.iface, m.Name, err))
				}
			}
		}
	}
	if b.ClassAnnotations != nil {
		if err := b.ClassAnnotations.each("", func(attrib.Annotation) {}); err != nil {
			errs = append(errs, fmt.Errorf("class annotations: %w", err))
		}
		if t := b.ClassAnnotations.StatefulTimeout; t != nil {
			if _, err := t.Timeout(); err != nil {
				errs = append(errs, fmt.Errorf("class stateful_timeout: %w", err))
			}
		}
	}
	if _, err := b.Concurrent(); err != nil {
		errs = append(errs, err)
	}
	for name, t := range map[string]*Timeout{
		"stateful_timeout":       b.StatefulTimeout,
		"default_access_timeout": b.DefaultAccessTimeout,
	} {
		if t == nil {
			continue
		}
		if _, err := t.Timeout(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errs
}

func (a *Assembly) validate() []error {
	var errs []error
	if _, err := a.Transactions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := a.Permissions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := a.Excludes(); err != nil {
		errs = append(errs, err)
	}
	if _, err := a.Sessions(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
