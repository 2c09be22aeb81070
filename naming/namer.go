package naming

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/zero-day-ai/ejbmeta/buzzhash"
)

// Option configures a Namer.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	generation *HashGeneration
}

// WithLogger sets the logger used for hash upgrade traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHashGeneration restores a hash generation learned earlier, for example
// from a previous run that had to upgrade the suffix to load its classes.
// The generation may only be at or after the era's initial generation.
func WithHashGeneration(g HashGeneration) Option {
	return func(c *config) {
		c.generation = &g
	}
}

// Namer derives the names of the classes generated for one bean.
//
// All accessors are deterministic. The only mutable state is the hash
// generation, which UpdateFilenameHashCode moves forward; it is guarded so
// that retries from several goroutines stay consistent.
type Namer struct {
	id       Identity
	beanName string
	typeTag  string
	version  ModuleVersion
	logger   *slog.Logger

	mu         sync.RWMutex
	generation HashGeneration
	suffix     string
}

// New validates id and computes the hash suffix for its era.
//
// A 3.x container-managed entity bean is named with the 2.x rules. In the
// 1.x and 2.x eras the Stateless and Stateful tags are spelled out.
func New(id Identity, opts ...Option) (*Namer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Namer{
		id:       id.clone(),
		beanName: TranslateBeanName(id.BeanName),
		version:  id.Version,
		logger:   cfg.logger,
	}
	if n.version == Version3 && id.Type == ContainerManaged {
		n.version = Version2
	}

	n.typeTag = string(id.Type)
	if n.version < Version3 {
		switch id.Type {
		case Stateless:
			n.typeTag = "Stateless"
		case Stateful:
			n.typeTag = "Stateful"
		}
	}

	if n.version >= Version3 {
		n.setSuffix(HashModified)
	} else {
		n.setSuffix(HashOriginal)
	}

	if cfg.generation != nil {
		if err := n.restore(*cfg.generation); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Namer) setSuffix(g HashGeneration) {
	n.generation = g
	n.suffix = buzzhash.HexMid32(n.id.HashString(), g == HashModified)
}

func (n *Namer) restore(g HashGeneration) error {
	if g.rank() < 0 {
		return fmt.Errorf("%w: unknown hash generation %d", ErrInvalidIdentity, int(g))
	}
	if g.rank() < n.generation.rank() {
		return fmt.Errorf("%w: hash generation %s precedes %s for a %s module",
			ErrInvalidIdentity, g, n.generation, n.version)
	}
	switch g {
	case HashModified:
		if n.generation != HashModified {
			n.setSuffix(HashModified)
		}
	case HashNone:
		if n.version != Version1 {
			return fmt.Errorf("%w: names without a hash suffix exist only for 1.x modules", ErrInvalidIdentity)
		}
		n.setSuffix(HashModified)
		n.generation = HashNone
	}
	return nil
}

// Identity returns a copy of the identity the namer was built from.
func (n *Namer) Identity() Identity {
	return n.id.clone()
}

// BeanName returns the translated bean name used in class names.
func (n *Namer) BeanName() string {
	return n.beanName
}

// Version returns the effective naming era.
func (n *Namer) Version() ModuleVersion {
	return n.version
}

// HashSuffix returns the current 8 hex digit suffix.
func (n *Namer) HashSuffix() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.suffix
}

// HashGeneration returns the current hash generation.
func (n *Namer) HashGeneration() HashGeneration {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.generation
}

func (n *Namer) state() (HashGeneration, string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.generation, n.suffix
}

// writeNameAndSuffix writes "<name>[extra]_<hash>".
func (n *Namer) writeNameAndSuffix(b *strings.Builder, extra, suffix string) {
	b.WriteString(n.beanName)
	b.WriteString(extra)
	b.WriteByte('_')
	b.WriteString(suffix)
}

// writeComponent writes the "C" marker that 3.x component interface
// wrappers carry, followed by the type tag.
func (n *Namer) writeComponent(b *strings.Builder) {
	if n.version >= Version3 {
		b.WriteByte('C')
	}
	b.WriteString(n.typeTag)
}

// BusinessRemoteImplClassName returns the wrapper name for the business
// remote interface at index.
func (n *Namer) BusinessRemoteImplClassName(index int) (string, error) {
	if n.id.BusinessRemote == nil || n.version < Version3 {
		return "", fmt.Errorf("%w: remote business interfaces are not supported in %s modules", ErrIllegalState, n.version)
	}
	if index < 0 || index >= len(n.id.BusinessRemote) {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(n.id.BusinessRemote))
	}
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, businessPackage(n.id.BusinessRemote[index]))
	b.WriteString(RemotePrefix)
	b.WriteString(strconv.Itoa(index))
	b.WriteString(n.typeTag)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String(), nil
}

// BusinessLocalImplClassName returns the wrapper name for the business local
// interface at index. The no-interface view, where the first business local
// interface is the bean class itself, is marked "N" instead of an index.
func (n *Namer) BusinessLocalImplClassName(index int) (string, error) {
	if n.id.BusinessLocal == nil || n.version < Version3 {
		return "", fmt.Errorf("%w: local business interfaces are not supported in %s modules", ErrIllegalState, n.version)
	}
	if index < 0 || index >= len(n.id.BusinessLocal) {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(n.id.BusinessLocal))
	}
	intf := n.id.BusinessLocal[index]
	_, suffix := n.state()

	marker := strconv.Itoa(index)
	if index == 0 && intf == n.id.BeanClass {
		marker = "N"
	}

	var b strings.Builder
	writePackage(&b, businessPackage(intf))
	b.WriteString(LocalPrefix)
	b.WriteString(marker)
	b.WriteString(n.typeTag)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String(), nil
}

// RemoteImplClassName returns the remote component wrapper name, or "" when
// the bean has no remote interface.
func (n *Namer) RemoteImplClassName() string {
	if n.id.Remote == "" {
		return ""
	}
	gen, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.Remote))
	b.WriteString(RemotePrefix)
	n.writeComponent(&b)
	if n.version >= Version2 {
		n.writeNameAndSuffix(&b, "", suffix)
	} else {
		b.WriteString(RelativeName(n.id.Remote))
		n.writeOptionalSuffix(&b, gen, suffix)
	}
	return b.String()
}

// LocalImplClassName returns the local component wrapper name, or "" when
// the bean has no local interface. Local interfaces do not exist in 1.x
// modules.
func (n *Namer) LocalImplClassName() (string, error) {
	if n.id.Local == "" {
		return "", nil
	}
	if n.version == Version1 {
		return "", fmt.Errorf("%w: local interfaces are not supported in %s modules", ErrIllegalState, n.version)
	}
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.Local))
	b.WriteString(LocalPrefix)
	n.writeComponent(&b)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String(), nil
}

// RemoteHomeImplClassName returns the remote home wrapper name, or "" when
// the bean has no remote home. The package is the remote interface's, not
// the home's.
func (n *Namer) RemoteHomeImplClassName() string {
	if n.id.RemoteHome == "" {
		return ""
	}
	gen, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.Remote))
	b.WriteString(RemotePrefix)
	n.writeComponent(&b)
	if n.version >= Version2 {
		n.writeNameAndSuffix(&b, "Home", suffix)
	} else {
		b.WriteString(RelativeName(n.id.RemoteHome))
		n.writeOptionalSuffix(&b, gen, suffix)
	}
	return b.String()
}

// LocalHomeImplClassName returns the local home wrapper name, or "" when the
// bean has no local home. The package is the local interface's.
func (n *Namer) LocalHomeImplClassName() (string, error) {
	if n.id.LocalHome == "" {
		return "", nil
	}
	if n.version == Version1 {
		return "", fmt.Errorf("%w: local interfaces are not supported in %s modules", ErrIllegalState, n.version)
	}
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.Local))
	b.WriteString(LocalPrefix)
	n.writeComponent(&b)
	n.writeNameAndSuffix(&b, "Home", suffix)
	return b.String(), nil
}

// HomeBeanClassName returns the home implementation name, or "" when the bean
// has neither a remote nor a local home.
func (n *Namer) HomeBeanClassName() string {
	home := n.id.RemoteHome
	if home == "" {
		home = n.id.LocalHome
	}
	if home == "" {
		return ""
	}
	gen, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(home))
	b.WriteString(HomeBeanPrefix)
	n.writeComponent(&b)
	if n.version >= Version2 {
		n.writeNameAndSuffix(&b, "HomeBean", suffix)
	} else {
		b.WriteString(RelativeName(n.id.RemoteHome))
		b.WriteString("Bean")
		n.writeOptionalSuffix(&b, gen, suffix)
	}
	return b.String()
}

// ConcreteBeanClassName returns the generated concrete subclass name. It is
// "" unless the module is 2.x or the bean is a container-managed entity.
func (n *Namer) ConcreteBeanClassName() string {
	if n.version != Version2 && n.id.Type != ContainerManaged {
		return ""
	}
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.BeanClass))
	b.WriteString(ConcreteBeanPrefix)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String()
}

// DeployedPersisterClassName returns the JDBC persister name.
func (n *Namer) DeployedPersisterClassName() string {
	var b strings.Builder
	writePackage(&b, PackageName(n.id.BeanClass))
	b.WriteString(PersisterPrefix)
	b.WriteString(n.typeTag)
	b.WriteString(RelativeName(n.id.BeanClass))
	return b.String()
}

// WebServiceEndpointProxyClassName returns the web service endpoint proxy
// name.
func (n *Namer) WebServiceEndpointProxyClassName() string {
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.BeanClass))
	b.WriteString(EndpointProxyPrefix)
	b.WriteString(n.typeTag)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String()
}

// MDBProxyClassName returns the message-driven bean proxy name.
func (n *Namer) MDBProxyClassName() string {
	_, suffix := n.state()

	var b strings.Builder
	writePackage(&b, PackageName(n.id.BeanClass))
	b.WriteString(MDBProxyPrefix)
	n.writeNameAndSuffix(&b, "", suffix)
	return b.String()
}

func (n *Namer) writeOptionalSuffix(b *strings.Builder, gen HashGeneration, suffix string) {
	if gen != HashNone {
		b.WriteByte('_')
		b.WriteString(suffix)
	}
}

// UpdateFilenameHashCode returns the next candidate for a generated class
// name that failed to load, or false when no candidate is left.
//
// name must end in '_' followed by 8 hex digits. A namer still on the
// original hash switches to the modified hash and returns the name with the
// new suffix. A 1.x namer already on the modified hash switches to unsuffixed
// names and returns name without its suffix. The switch applies to every
// name generated afterwards.
func (n *Namer) UpdateFilenameHashCode(name string) (string, bool) {
	l := len(name)
	if l <= 9 || name[l-9] != '_' || !isHexSuffix(name[l-8:]) {
		return "", false
	}
	stem := name[:l-8]

	n.mu.Lock()
	defer n.mu.Unlock()

	switch {
	case n.generation == HashOriginal:
		n.setSuffix(HashModified)
		n.logger.Debug("hash suffix upgraded",
			"bean", n.id.BeanName,
			"generation", n.generation.String(),
			"suffix", n.suffix)
		return stem + n.suffix, true

	case n.generation == HashModified && n.version == Version1:
		n.generation = HashNone
		n.logger.Debug("hash suffix dropped",
			"bean", n.id.BeanName,
			"generation", n.generation.String())
		return stem[:len(stem)-1], true
	}
	return "", false
}
