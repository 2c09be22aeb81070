package ejbmeta

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/cfgerr"
	"github.com/zero-day-ai/ejbmeta/descriptor"
	"github.com/zero-day-ai/ejbmeta/naming"
	"github.com/zero-day-ai/ejbmeta/store"
)

const ordersModule = `
name: orders.jar
version: 3
beans:
  - name: CartBean
    type: stateful
    class: com.shop.CartBean
    business_local: [com.shop.Cart]
    methods:
      local:
        - name: add
          params: [java.lang.String]
          annotations:
            transaction: Mandatory
        - name: checkout
          params: []
      lifecycle:
        - name: destroy
    class_annotations:
      access_timeout: {value: 2, unit: seconds}
      stateful_timeout: {value: 10, unit: minutes}

  - name: InventoryBean
    type: singleton
    class: com.shop.InventoryBean
    business_local: [com.shop.Inventory]
    methods:
      local:
        - name: reserve
          params: [java.lang.String, int]
        - name: stock
          params: [java.lang.String]
    concurrent_methods:
      - method: {name: "*"}
        lock: Read
      - method: {name: reserve, params: [java.lang.String, int]}
        lock: Write
        access_timeout: {value: 0}
    async_methods:
      - name: stock
    default_access_timeout: {value: 30, unit: seconds}

  - name: LegacyBean
    type: stateless
    class: com.shop.LegacyBean
    remote: com.shop.Legacy
    remote_home: com.shop.LegacyHome
    transaction_type: bean
    methods:
      remote:
        - name: run

assembly:
  container_transactions:
    - attribute: Never
      methods:
        - {bean: LegacyBean, name: "*"}
  method_permissions:
    - roles: [stocker]
      methods:
        - {bean: InventoryBean, name: reserve}
`

// tellerModule hashes to f82502ac (original) and b14350da (modified).
const tellerModule = `
name: bank.jar
version: 2
beans:
  - name: Teller
    type: stateless
    class: com.example.banking.TellerBean
    remote: com.example.banking.Teller
    remote_home: com.example.banking.TellerHome
    methods:
      remote:
        - name: deposit
          params: [long]
`

func parseModule(t *testing.T, doc string) *descriptor.Module {
	t.Helper()
	mod, err := descriptor.Parse([]byte(doc))
	require.NoError(t, err)
	return mod
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	assembler *Assembler
	spans     *tracetest.SpanRecorder
	store     *store.MemoryStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	st := store.NewMemoryStore()
	a, err := NewAssembler(
		WithLogger(discardLogger()),
		WithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))),
		WithMeterProvider(noop.NewMeterProvider()),
		WithStore(st),
	)
	require.NoError(t, err)
	return &harness{assembler: a, spans: rec, store: st}
}

func (h *harness) spanNamed(name string) sdktrace.ReadOnlySpan {
	for _, s := range h.spans.Ended() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func method(t *testing.T, meta *BeanMetadata, view attrib.InterfaceType, name string, params ...string) MethodMetadata {
	t.Helper()
	if params == nil {
		params = []string{}
	}
	mm, ok := meta.Method(view, attrib.MethodKey(name, params))
	require.True(t, ok, "method %s not found in %s view", name, view)
	return mm
}

func TestNewAssemblerDefaults(t *testing.T) {
	a, err := NewAssembler()
	require.NoError(t, err)
	assert.NotNil(t, a.logger)
	assert.NotNil(t, a.tracer)
	assert.True(t, a.ownsStore)
	assert.NoError(t, a.Close())
}

func TestAssembleStatefulBean(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	meta, err := h.assembler.Assemble(context.Background(), mod, "CartBean")
	require.NoError(t, err)

	assert.Equal(t, "orders.jar", meta.Module)
	assert.Equal(t, "CartBean", meta.Bean)
	assert.Equal(t, attrib.Stateful, meta.Kind)
	assert.NotEmpty(t, meta.AssemblyID)
	assert.Equal(t, naming.HashModified, meta.HashGeneration())
	assert.Len(t, meta.Methods, 3)
	assert.False(t, meta.HasAsync)

	add := method(t, meta, attrib.Local, "add", "java.lang.String")
	assert.Equal(t, attrib.TxMandatory, add.Transaction)
	assert.Nil(t, add.Lock)
	require.NotNil(t, add.AccessTimeout)
	assert.Equal(t, int64(2000), *add.AccessTimeout)

	checkout := method(t, meta, attrib.Local, "checkout")
	assert.Equal(t, attrib.TxRequired, checkout.Transaction)

	destroy := method(t, meta, attrib.LifecycleCallback, "destroy")
	assert.Equal(t, attrib.TxNotSupported, destroy.Transaction)
	assert.Nil(t, destroy.AccessTimeout)

	require.NotNil(t, meta.StatefulTimeout)
	assert.Equal(t, int64(600000), *meta.StatefulTimeout)

	name, ok := meta.Name(naming.BusinessLocalRole(0))
	require.True(t, ok)
	assert.Contains(t, name, "EJSLocal0SFCartBean_")
}

func TestAssembleSingletonConcurrency(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	meta, err := h.assembler.Assemble(context.Background(), mod, "InventoryBean")
	require.NoError(t, err)

	reserve := method(t, meta, attrib.Local, "reserve", "java.lang.String", "int")
	require.NotNil(t, reserve.Lock)
	assert.Equal(t, attrib.LockWrite, *reserve.Lock)
	require.NotNil(t, reserve.AccessTimeout)
	assert.Equal(t, attrib.NoWait, *reserve.AccessTimeout)
	assert.Equal(t, attrib.DispositionRoles, reserve.Permission.Disposition())
	assert.Equal(t, []string{"stocker"}, reserve.Permission.Roles)
	assert.False(t, reserve.Asynchronous)

	stock := method(t, meta, attrib.Local, "stock", "java.lang.String")
	require.NotNil(t, stock.Lock)
	assert.Equal(t, attrib.LockRead, *stock.Lock)
	require.NotNil(t, stock.AccessTimeout)
	assert.Equal(t, int64(30000), *stock.AccessTimeout)
	assert.True(t, stock.Asynchronous)
	assert.True(t, meta.HasAsync)
	assert.Nil(t, meta.StatefulTimeout)
}

func TestAssembleBeanManagedTransactions(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	meta, err := h.assembler.Assemble(context.Background(), mod, "LegacyBean")
	require.NoError(t, err)

	run := method(t, meta, attrib.Remote, "run")
	assert.Equal(t, attrib.TxBeanManaged, run.Transaction)
	assert.Equal(t, attrib.ASUnknown, run.ActivitySession)
	assert.Nil(t, run.Lock)
	assert.Nil(t, run.AccessTimeout)

	names := meta.Names()
	assert.Contains(t, names, naming.RoleRemote)
	assert.Contains(t, names, naming.RoleRemoteHome)
}

func TestAssemblePersistsNames(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)
	ctx := context.Background()

	meta, err := h.assembler.Assemble(ctx, mod, "InventoryBean")
	require.NoError(t, err)

	rec, err := h.store.Get(ctx, store.Key("orders.jar", "InventoryBean"))
	require.NoError(t, err)
	assert.Equal(t, meta.AssemblyID, rec.AssemblyID)
	assert.Equal(t, naming.HashModified, rec.HashGeneration)
	for role, name := range meta.Names() {
		assert.Equal(t, name, rec.Names[string(role)], "role %s", role)
	}
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestAssembleRecordsSpan(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	_, err := h.assembler.Assemble(context.Background(), mod, "CartBean")
	require.NoError(t, err)

	span := h.spanNamed("ejbmeta.Assemble")
	require.NotNil(t, span)
	assert.Equal(t, codes.Ok, span.Status().Code)
}

func TestAssembleUnknownBean(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	_, err := h.assembler.Assemble(context.Background(), mod, "NoSuchBean")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeanNotFound)
	assert.ErrorIs(t, err, &Error{Kind: KindNotFound})

	span := h.spanNamed("ejbmeta.Assemble")
	require.NotNil(t, span)
	assert.Equal(t, codes.Error, span.Status().Code)
}

func TestAssembleNilModule(t *testing.T) {
	h := newHarness(t)
	_, err := h.assembler.Assemble(context.Background(), nil, "CartBean")
	assert.ErrorIs(t, err, ErrNilModule)
}

func TestAssembleConfigurationError(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, `
name: broken.jar
beans:
  - name: AuditBean
    type: stateless
    class: com.acme.AuditBean
    local: com.acme.Audit
    methods:
      local:
        - name: purge
          annotations:
            deny_all: true
            permit_all: true
`)

	_, err := h.assembler.Assemble(context.Background(), mod, "AuditBean")
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: KindConfiguration})
	assert.ErrorIs(t, err, cfgerr.ErrConflictingMethodAnnotations)

	var cfg *cfgerr.Error
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, cfgerr.CodeConflictingMethodAnnotations, cfg.Code)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Assembler.Assemble", e.Op)
	assert.Equal(t, "AuditBean", e.Bean)

	_, err = h.store.Get(context.Background(), store.Key("broken.jar", "AuditBean"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssembleModule(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)

	metas, err := h.assembler.AssembleModule(context.Background(), mod)
	require.NoError(t, err)
	require.Len(t, metas, 3)
	assert.Equal(t, "CartBean", metas[0].Bean)
	assert.Equal(t, "InventoryBean", metas[1].Bean)
	assert.Equal(t, "LegacyBean", metas[2].Bean)
	assert.NotEqual(t, metas[0].AssemblyID, metas[1].AssemblyID)
}

func TestAssembleModuleCanceled(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	metas, err := h.assembler.AssembleModule(ctx, mod)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, metas)
}

func TestAssembleDiscardsStaleGeneration(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)
	ctx := context.Background()

	// 3.x names start on the modified hash; the original one cannot be
	// restored.
	require.NoError(t, h.store.Put(ctx, &store.Record{
		Key:            store.Key("orders.jar", "CartBean"),
		HashGeneration: naming.HashOriginal,
	}))

	meta, err := h.assembler.Assemble(ctx, mod, "CartBean")
	require.NoError(t, err)
	assert.Equal(t, naming.HashModified, meta.HashGeneration())
}

type failingStore struct {
	store.Store
}

func (failingStore) Get(context.Context, string) (*store.Record, error) {
	return nil, errors.New("connection refused")
}

func TestAssembleStoreFailure(t *testing.T) {
	a, err := NewAssembler(
		WithLogger(discardLogger()),
		WithMeterProvider(noop.NewMeterProvider()),
		WithStore(failingStore{}),
	)
	require.NoError(t, err)

	_, err = a.Assemble(context.Background(), parseModule(t, ordersModule), "CartBean")
	assert.ErrorIs(t, err, &Error{Kind: KindStore})
}

func TestLocateUpgradesGeneration(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, tellerModule)
	ctx := context.Background()

	meta, err := h.assembler.Assemble(ctx, mod, "Teller")
	require.NoError(t, err)
	require.Equal(t, naming.HashOriginal, meta.HashGeneration())
	first, ok := meta.Name(naming.RoleRemote)
	require.True(t, ok)
	require.Equal(t, "com.example.banking.EJSRemoteStatelessTeller_f82502ac", first)

	var tried []string
	loader := naming.ClassLoaderFunc(func(_ context.Context, name string) error {
		tried = append(tried, name)
		if name == first {
			return errors.New("class not found")
		}
		return nil
	})

	got, err := h.assembler.Locate(ctx, meta, naming.RoleRemote, loader)
	require.NoError(t, err)
	assert.Equal(t, "com.example.banking.EJSRemoteStatelessTeller_b14350da", got)
	assert.Equal(t, []string{first, got}, tried)
	assert.Equal(t, naming.HashModified, meta.HashGeneration())

	name, _ := meta.Name(naming.RoleRemote)
	assert.Equal(t, got, name)

	rec, err := h.store.Get(ctx, store.Key("bank.jar", "Teller"))
	require.NoError(t, err)
	assert.Equal(t, naming.HashModified, rec.HashGeneration)
	assert.Equal(t, got, rec.Names[string(naming.RoleRemote)])

	// The next run starts from the upgraded suffix.
	again, err := h.assembler.Assemble(ctx, mod, "Teller")
	require.NoError(t, err)
	assert.Equal(t, naming.HashModified, again.HashGeneration())
	name, _ = again.Name(naming.RoleRemote)
	assert.Equal(t, got, name)

	require.NotNil(t, h.spanNamed("ejbmeta.Locate"))
}

func TestLocateExhausted(t *testing.T) {
	h := newHarness(t)
	mod := parseModule(t, ordersModule)
	ctx := context.Background()

	meta, err := h.assembler.Assemble(ctx, mod, "LegacyBean")
	require.NoError(t, err)

	loader := naming.ClassLoaderFunc(func(context.Context, string) error {
		return errors.New("class not found")
	})
	_, err = h.assembler.Locate(ctx, meta, naming.RoleRemote, loader)
	require.Error(t, err)
	assert.ErrorIs(t, err, naming.ErrGeneratedClassNotFound)
	assert.ErrorIs(t, err, &Error{Kind: KindNotFound})
	assert.Equal(t, naming.HashModified, meta.HashGeneration())

	span := h.spanNamed("ejbmeta.Locate")
	require.NotNil(t, span)
	assert.Equal(t, codes.Error, span.Status().Code)
}

func TestLocateRoleWithoutClass(t *testing.T) {
	h := newHarness(t)
	meta, err := h.assembler.Assemble(context.Background(), parseModule(t, ordersModule), "LegacyBean")
	require.NoError(t, err)

	loader := naming.ClassLoaderFunc(func(context.Context, string) error { return nil })
	_, err = h.assembler.Locate(context.Background(), meta, naming.RoleLocal, loader)
	assert.ErrorIs(t, err, naming.ErrGeneratedClassNotFound)
}

func TestLocateNotAssembled(t *testing.T) {
	h := newHarness(t)
	_, err := h.assembler.Locate(context.Background(), &BeanMetadata{}, naming.RoleRemote, nil)
	assert.ErrorIs(t, err, ErrNotAssembled)
}
