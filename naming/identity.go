package naming

import (
	"fmt"
	"slices"
)

// BeanType is the short tag identifying the kind of bean.
type BeanType string

// Bean type tags.
const (
	Singleton        BeanType = "SG"
	Stateless        BeanType = "SL"
	Stateful         BeanType = "SF"
	BeanManaged      BeanType = "BMP"
	ContainerManaged BeanType = "CMP"
	MessageDriven    BeanType = "MDB"
	ManagedBean      BeanType = "MB"
)

// IsValid reports whether t is one of the known bean type tags.
func (t BeanType) IsValid() bool {
	switch t {
	case Singleton, Stateless, Stateful, BeanManaged, ContainerManaged, MessageDriven, ManagedBean:
		return true
	}
	return false
}

// ParseBeanType accepts either the tag ("SL") or a descriptive name
// ("stateless").
func ParseBeanType(s string) (BeanType, error) {
	switch s {
	case "SG", "singleton", "Singleton":
		return Singleton, nil
	case "SL", "stateless", "Stateless":
		return Stateless, nil
	case "SF", "stateful", "Stateful":
		return Stateful, nil
	case "BMP", "bmp", "bean-managed", "entity-bmp":
		return BeanManaged, nil
	case "CMP", "cmp", "container-managed", "entity-cmp":
		return ContainerManaged, nil
	case "MDB", "mdb", "message-driven":
		return MessageDriven, nil
	case "MB", "managed", "managed-bean":
		return ManagedBean, nil
	}
	return "", fmt.Errorf("%w: unsupported bean type %q", ErrInvalidIdentity, s)
}

// ModuleVersion is the naming era of the module containing the bean.
type ModuleVersion int

// Module eras.
const (
	Version1 ModuleVersion = 1
	Version2 ModuleVersion = 2
	Version3 ModuleVersion = 3
)

// IsValid reports whether v is a supported era.
func (v ModuleVersion) IsValid() bool {
	return v >= Version1 && v <= Version3
}

func (v ModuleVersion) String() string {
	return fmt.Sprintf("%d.x", int(v))
}

// HashGeneration records which hash algorithm, if any, produced the suffix of
// generated names. It only moves from HashOriginal to HashModified to
// HashNone.
type HashGeneration int

const (
	// HashNone means names carry no hash suffix (oldest era only).
	HashNone HashGeneration = 0

	// HashOriginal means the suffix comes from the plain rolling hash.
	HashOriginal HashGeneration = 1

	// HashModified means the suffix comes from the anti-collision hash.
	HashModified HashGeneration = 2
)

// rank orders generations along the upgrade path.
func (g HashGeneration) rank() int {
	switch g {
	case HashOriginal:
		return 0
	case HashModified:
		return 1
	case HashNone:
		return 2
	}
	return -1
}

func (g HashGeneration) String() string {
	switch g {
	case HashNone:
		return "none"
	case HashOriginal:
		return "original"
	case HashModified:
		return "modified"
	}
	return fmt.Sprintf("HashGeneration(%d)", int(g))
}

// Identity is the set of names a bean's generated classes are derived from.
// Empty strings and nil slices mean the corresponding interface is absent.
type Identity struct {
	// BeanName is the full, untranslated bean name.
	BeanName string

	Type    BeanType
	Version ModuleVersion

	RemoteHome     string
	Remote         string
	LocalHome      string
	Local          string
	BusinessRemote []string
	BusinessLocal  []string
	BeanClass      string
	PrimaryKey     string
}

// Validate checks the fields construction depends on.
func (id Identity) Validate() error {
	if id.BeanName == "" {
		return fmt.Errorf("%w: bean name not specified", ErrInvalidIdentity)
	}
	if !id.Version.IsValid() {
		return fmt.Errorf("%w: unsupported module version: %d", ErrInvalidIdentity, int(id.Version))
	}
	if !id.Type.IsValid() {
		return fmt.Errorf("%w: unsupported bean type: %q", ErrInvalidIdentity, string(id.Type))
	}
	return nil
}

// HashString returns the text the hash suffix is computed over. The order of
// the parts is fixed: changing it changes every deployed name.
func (id Identity) HashString() string {
	var b []byte
	b = append(b, id.BeanName...)
	for _, s := range []string{id.RemoteHome, id.Remote, id.LocalHome, id.Local} {
		b = append(b, s...)
	}
	for _, s := range id.BusinessRemote {
		b = append(b, s...)
	}
	for _, s := range id.BusinessLocal {
		b = append(b, s...)
	}
	b = append(b, id.BeanClass...)
	b = append(b, id.PrimaryKey...)
	return string(b)
}

func (id Identity) clone() Identity {
	id.BusinessRemote = slices.Clone(id.BusinessRemote)
	id.BusinessLocal = slices.Clone(id.BusinessLocal)
	return id
}
