package naming

import (
	"context"
	"errors"
	"fmt"
)

// maxEscalations bounds how many times Locate asks for a new candidate:
// original to modified hash, then modified hash to no suffix.
const maxEscalations = 2

// ClassLoader loads a generated class by name.
type ClassLoader interface {
	Load(ctx context.Context, name string) error
}

// ClassLoaderFunc adapts a function to ClassLoader.
type ClassLoaderFunc func(ctx context.Context, name string) error

// Load calls f.
func (f ClassLoaderFunc) Load(ctx context.Context, name string) error {
	return f(ctx, name)
}

// Locate loads name, and on failure retries with the candidates produced by
// n.UpdateFilenameHashCode until one loads or none is left. It returns the
// name that loaded. On exhaustion the error wraps ErrGeneratedClassNotFound
// and every load failure.
func Locate(ctx context.Context, n *Namer, name string, loader ClassLoader) (string, error) {
	var errs []error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		err := loader.Load(ctx, name)
		if err == nil {
			return name, nil
		}
		errs = append(errs, fmt.Errorf("load %s: %w", name, err))

		if attempt == maxEscalations {
			break
		}
		next, ok := n.UpdateFilenameHashCode(name)
		if ok && next == name {
			// Both hash generations produced the same suffix. Skip the
			// repeat load and move on to the unsuffixed name, if any.
			next, ok = n.UpdateFilenameHashCode(name)
		}
		if !ok || next == name {
			break
		}
		name = next
	}
	return "", errors.Join(append([]error{ErrGeneratedClassNotFound}, errs...)...)
}
