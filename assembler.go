package ejbmeta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/ejbmeta/cfgerr"
	"github.com/zero-day-ai/ejbmeta/descriptor"
	"github.com/zero-day-ai/ejbmeta/naming"
	"github.com/zero-day-ai/ejbmeta/store"
)

const instrumentationName = "github.com/zero-day-ai/ejbmeta"

// Assembler turns descriptor beans into BeanMetadata: generated class
// names plus the resolved attributes of every method. It is safe for
// concurrent use.
type Assembler struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *assemblerMetrics
	store     store.Store
	ownsStore bool
}

// NewAssembler creates an Assembler with the given options.
func NewAssembler(opts ...Option) (*Assembler, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}
	if cfg.meterProvider == nil {
		cfg.meterProvider = otel.GetMeterProvider()
	}

	m, err := newAssemblerMetrics(cfg.meterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	a := &Assembler{
		logger:  cfg.logger,
		tracer:  cfg.tracerProvider.Tracer(instrumentationName),
		metrics: m,
		store:   cfg.store,
	}
	if a.store == nil {
		a.store = store.NewMemoryStore()
		a.ownsStore = true
	}
	return a, nil
}

// Close releases the default store. A store passed with WithStore is left
// to the caller.
func (a *Assembler) Close() error {
	if !a.ownsStore {
		return nil
	}
	return a.store.Close()
}

// Assemble resolves the names and method metadata of the bean named
// beanName in mod and records its naming state in the store.
//
// A stored hash generation from an earlier run is restored first, so a
// bean whose classes were found under an upgraded suffix keeps that
// suffix.
func (a *Assembler) Assemble(ctx context.Context, mod *descriptor.Module, beanName string) (*BeanMetadata, error) {
	const op = "Assembler.Assemble"
	start := time.Now()

	var moduleName string
	if mod != nil {
		moduleName = mod.Name
	}
	ctx, span := a.tracer.Start(ctx, "ejbmeta.Assemble", trace.WithAttributes(
		attribute.String("ejbmeta.module", moduleName),
		attribute.String("ejbmeta.bean", beanName),
	))
	defer span.End()

	meta, err := a.assemble(ctx, op, mod, beanName)
	if err != nil {
		var cfg *cfgerr.Error
		if errors.As(err, &cfg) {
			a.metrics.recordConfigError(ctx, cfg.Code)
			span.SetAttributes(attribute.String("ejbmeta.code", cfg.Code))
		} else if errors.Is(err, &Error{Kind: KindConfiguration}) {
			a.metrics.recordConfigError(ctx, "")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.logger.Error("bean assembly failed",
			"module", moduleName,
			"bean", beanName,
			"error", err)
		return nil, err
	}

	ms := float64(time.Since(start).Microseconds()) / 1000
	a.metrics.recordAssembly(ctx, meta.Module, meta.Kind.String(), ms)
	span.SetAttributes(
		attribute.String("ejbmeta.assembly_id", meta.AssemblyID),
		attribute.String("ejbmeta.hash_generation", meta.HashGeneration().String()),
		attribute.Int("ejbmeta.method_count", len(meta.Methods)),
	)
	span.SetStatus(codes.Ok, "")
	a.logger.Info("bean assembled",
		"module", meta.Module,
		"bean", meta.Bean,
		"kind", meta.Kind.String(),
		"assembly_id", meta.AssemblyID,
		"methods", len(meta.Methods),
		"duration_ms", ms)
	return meta, nil
}

func (a *Assembler) assemble(ctx context.Context, op string, mod *descriptor.Module, beanName string) (*BeanMetadata, error) {
	if mod == nil {
		return nil, newError(op, KindConfiguration, beanName, ErrNilModule)
	}
	bean, ok := mod.Bean(beanName)
	if !ok {
		return nil, newError(op, KindNotFound, beanName,
			fmt.Errorf("%w: %q in module %s", ErrBeanNotFound, beanName, mod.Name))
	}

	namer, err := a.namer(ctx, op, mod, bean)
	if err != nil {
		return nil, err
	}
	names, err := namer.Names()
	if err != nil {
		return nil, newError(op, KindIdentity, bean.Name, err)
	}

	res, err := a.resolve(mod, bean)
	if err != nil {
		return nil, newError(op, KindConfiguration, bean.Name, err)
	}

	meta := &BeanMetadata{
		AssemblyID:      uuid.NewString(),
		Module:          mod.Name,
		Bean:            bean.Name,
		Kind:            bean.Kind(),
		Methods:         res.methods,
		HasAsync:        res.hasAsync,
		StatefulTimeout: res.statefulTimeout,
		namer:           namer,
		names:           names,
		generation:      namer.HashGeneration(),
	}
	if err := a.store.Put(ctx, meta.record()); err != nil {
		return nil, newError(op, KindStore, bean.Name, err)
	}
	return meta, nil
}

// namer builds the bean's Namer, restoring the hash generation of the
// stored record if there is one. A record the identity cannot accept, for
// example one written before the module moved to a later era, is dropped.
func (a *Assembler) namer(ctx context.Context, op string, mod *descriptor.Module, bean *descriptor.Bean) (*naming.Namer, error) {
	id, err := bean.Identity(mod.ModuleVersion())
	if err != nil {
		return nil, newError(op, KindIdentity, bean.Name, err)
	}

	key := store.Key(mod.Name, bean.Name)
	rec, err := a.store.Get(ctx, key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		rec = nil
	case err != nil:
		return nil, newError(op, KindStore, bean.Name, err)
	}

	if rec != nil {
		n, err := naming.New(id, naming.WithLogger(a.logger), naming.WithHashGeneration(rec.HashGeneration))
		if err == nil {
			return n, nil
		}
		a.logger.Warn("discarding stored hash generation",
			"key", key,
			"hash_generation", rec.HashGeneration.String(),
			"error", err)
	}

	n, err := naming.New(id, naming.WithLogger(a.logger))
	if err != nil {
		return nil, newError(op, KindIdentity, bean.Name, err)
	}
	return n, nil
}

// AssembleModule assembles every bean of mod. Beans that fail are left
// out of the result and their errors are joined.
func (a *Assembler) AssembleModule(ctx context.Context, mod *descriptor.Module) ([]*BeanMetadata, error) {
	if mod == nil {
		return nil, newError("Assembler.AssembleModule", KindConfiguration, "", ErrNilModule)
	}
	out := make([]*BeanMetadata, 0, len(mod.Beans))
	var errs []error
	for i := range mod.Beans {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		meta, err := a.Assemble(ctx, mod, mod.Beans[i].Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, meta)
	}
	return out, errors.Join(errs...)
}

// Locate finds the loadable name of the class generated for role. When
// the first candidate does not load, the hash suffix is upgraded and the
// new candidates are tried. An upgraded generation is saved to the store
// so the next Assemble starts from it.
func (a *Assembler) Locate(ctx context.Context, meta *BeanMetadata, role naming.Role, loader naming.ClassLoader) (string, error) {
	const op = "Assembler.Locate"
	if meta == nil || meta.namer == nil {
		return "", newError(op, KindNotFound, "", ErrNotAssembled)
	}

	ctx, span := a.tracer.Start(ctx, "ejbmeta.Locate", trace.WithAttributes(
		attribute.String("ejbmeta.module", meta.Module),
		attribute.String("ejbmeta.bean", meta.Bean),
		attribute.String("ejbmeta.role", string(role)),
	))
	defer span.End()

	fail := func(kind string, err error) (string, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", newError(op, kind, meta.Bean, err)
	}

	first, err := meta.namer.Name(role)
	if err != nil {
		return fail(KindIdentity, err)
	}
	if first == "" {
		return fail(KindNotFound, fmt.Errorf("%w: no class is generated for role %s", naming.ErrGeneratedClassNotFound, role))
	}

	before := meta.namer.HashGeneration()
	name, lerr := naming.Locate(ctx, meta.namer, first, loader)
	if after := meta.namer.HashGeneration(); after != before {
		a.metrics.recordUpgrade(ctx, after.String())
		a.logger.Debug("hash generation upgraded",
			"bean", meta.Bean,
			"from", before.String(),
			"to", after.String())
		if err := a.refresh(ctx, meta); err != nil {
			return fail(KindStore, err)
		}
	}

	if lerr != nil {
		if !errors.Is(lerr, naming.ErrGeneratedClassNotFound) {
			span.RecordError(lerr)
			span.SetStatus(codes.Error, lerr.Error())
			return "", lerr
		}
		return fail(KindNotFound, lerr)
	}
	span.SetAttributes(attribute.String("ejbmeta.class", name))
	span.SetStatus(codes.Ok, "")
	return name, nil
}

// refresh recomputes the names of meta after a generation change and
// saves them.
func (a *Assembler) refresh(ctx context.Context, meta *BeanMetadata) error {
	names, err := meta.namer.Names()
	if err != nil {
		return err
	}
	meta.setNames(names, meta.namer.HashGeneration())
	return a.store.Put(ctx, meta.record())
}
