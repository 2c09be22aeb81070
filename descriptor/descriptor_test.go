package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/naming"
)

func loadTestModule(t *testing.T) *Module {
	t.Helper()
	mod, err := Load(filepath.Join("testdata", DefaultFileName))
	require.NoError(t, err)
	return mod
}

func TestLoad(t *testing.T) {
	mod := loadTestModule(t)

	assert.Equal(t, "claims.jar", mod.Name)
	assert.Equal(t, naming.Version3, mod.ModuleVersion())
	require.Len(t, mod.Beans, 2)

	claim, ok := mod.Bean("ClaimBean")
	require.True(t, ok)
	assert.Equal(t, attrib.Stateless, claim.Kind())
	require.Len(t, claim.Methods.Local, 3)
	assert.Equal(t, []string{"[B", "int"}, claim.Methods.Local[2].Params.Strings())

	_, ok = mod.Bean("Missing")
	assert.False(t, ok)
}

func TestLoadDirectory(t *testing.T) {
	mod, err := Load("testdata")
	require.NoError(t, err)
	assert.Equal(t, "claims.jar", mod.Name)

	_, err = Load(t.TempDir())
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParamsPresence(t *testing.T) {
	mod := loadTestModule(t)
	claim, _ := mod.Bean("ClaimBean")

	assert.Nil(t, claim.Methods.Lifecycle[0].Params.Strings())
	empty := claim.Methods.Local[1].Params.Strings()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestParamsScalarForms(t *testing.T) {
	var holder struct {
		A Params `yaml:"a"`
		B Params `yaml:"b"`
		C Params `yaml:"c"`
	}
	data := []byte("a: \"\"\nb: int , long\nc: ~\n")
	require.NoError(t, yaml.Unmarshal(data, &holder))

	assert.NotNil(t, holder.A)
	assert.Empty(t, holder.A)
	assert.Equal(t, Params{"int", "long"}, holder.B)
	assert.Nil(t, holder.C)
}

func TestIdentity(t *testing.T) {
	mod := loadTestModule(t)
	order, ok := mod.Bean("Order Service")
	require.True(t, ok)

	id, err := order.Identity(mod.ModuleVersion())
	require.NoError(t, err)
	assert.Equal(t, naming.Singleton, id.Type)
	assert.Equal(t, []string{"com.shop.OrderService"}, id.BusinessLocal)
	assert.Equal(t, "com.shop.OrderServiceBean", id.BeanClass)

	n, err := naming.New(id)
	require.NoError(t, err)
	assert.NotEmpty(t, n.HashSuffix())
}

func TestAnnotationSource(t *testing.T) {
	mod := loadTestModule(t)
	claim, _ := mod.Bean("ClaimBean")

	src, err := claim.AnnotationSource()
	require.NoError(t, err)

	submit := &attrib.Method{Name: "submit", Params: []string{"java.lang.String"}, DeclaringClass: "com.acme.ClaimBean"}
	a, ok := src.MethodAnnotation(submit, attrib.TransactionAttributeAnnotation)
	require.True(t, ok)
	assert.Equal(t, attrib.TxRequiresNew, a.Transaction)

	a, ok = src.MethodAnnotation(submit, attrib.RolesAllowedAnnotation)
	require.True(t, ok)
	assert.Equal(t, []string{"clerk", "adjuster"}, a.Roles)

	a, ok = src.ClassAnnotation("com.acme.ClaimBean", attrib.TransactionAttributeAnnotation)
	require.True(t, ok)
	assert.Equal(t, attrib.TxSupports, a.Transaction)

	_, ok = src.ClassAnnotation("com.acme.ClaimBean", attrib.PermitAllAnnotation)
	assert.True(t, ok)
}

func TestViewsAndRules(t *testing.T) {
	mod := loadTestModule(t)
	claim, _ := mod.Bean("ClaimBean")

	views := claim.ViewMethods()
	require.Len(t, views, 2)
	assert.Equal(t, attrib.Local, views[0].Interface)
	assert.Equal(t, attrib.LifecycleCallback, views[1].Interface)
	assert.Equal(t, "com.acme.ClaimBean", views[0].Methods[0].DeclaringClass)
	assert.Len(t, claim.BusinessMethods(), 3)

	txs, err := mod.Assembly.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, attrib.TxMandatory, txs[0].Attribute)
	assert.Equal(t, attrib.Local, txs[0].Methods[0].Interface)
	assert.Nil(t, txs[0].Methods[0].Params)

	ex, err := mod.Assembly.Excludes()
	require.NoError(t, err)
	require.Len(t, ex, 1)
	assert.Equal(t, []string{"byte[]", "int"}, ex[0].Methods[0].Params)

	sessions, err := mod.Assembly.Sessions()
	require.NoError(t, err)
	assert.Equal(t, attrib.ASSupports, sessions[0].Attribute)

	rb := claim.Resolvable(mod)
	assert.Equal(t, "claims.jar", rb.Module)
	assert.False(t, rb.MetadataComplete)
}

func TestConcurrentAndAsync(t *testing.T) {
	mod := loadTestModule(t)
	order, _ := mod.Bean("Order Service")

	assert.True(t, order.ContainerConcurrency())
	cms, err := order.Concurrent()
	require.NoError(t, err)
	require.Len(t, cms, 2)
	require.NotNil(t, cms[0].Lock)
	assert.Equal(t, attrib.LockRead, *cms[0].Lock)
	require.NotNil(t, cms[0].AccessTimeout)
	assert.Equal(t, attrib.Timeout{Value: 5, Unit: attrib.Seconds}, *cms[0].AccessTimeout)
	assert.Nil(t, cms[1].AccessTimeout)

	async := order.Async()
	require.Len(t, async, 1)
	assert.Equal(t, "place", async[0].Name)
	assert.Nil(t, async[0].Params)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "missing module name",
			yaml:    "beans: []\n",
			wantMsg: "module name is required",
		},
		{
			name:    "bad version",
			yaml:    "name: m\nversion: 4\n",
			wantMsg: "module version 4",
		},
		{
			name:    "duplicate bean",
			yaml:    "name: m\nbeans:\n  - {name: A, type: stateless, class: a.A}\n  - {name: A, type: stateful, class: a.B}\n",
			wantMsg: `duplicate bean name "A"`,
		},
		{
			name:    "unknown bean type",
			yaml:    "name: m\nbeans:\n  - {name: A, type: session, class: a.A}\n",
			wantMsg: "unsupported bean type",
		},
		{
			name:    "unknown transaction attribute",
			yaml:    "name: m\nassembly:\n  container_transactions:\n    - attribute: Sometimes\n      methods: [{bean: A, name: x}]\n",
			wantMsg: "unknown transaction attribute",
		},
		{
			name:    "unknown interface",
			yaml:    "name: m\nassembly:\n  exclude_list:\n    - {bean: A, name: x, interface: Sideways}\n",
			wantMsg: "unknown method interface",
		},
		{
			name:    "unknown lock",
			yaml:    "name: m\nbeans:\n  - name: A\n    type: singleton\n    class: a.A\n    concurrent_methods:\n      - {method: {name: x}, lock: Shared}\n",
			wantMsg: "unknown lock type",
		},
		{
			name:    "bad management style",
			yaml:    "name: m\nbeans:\n  - {name: A, type: stateless, class: a.A, transaction_type: mixed}\n",
			wantMsg: "transaction_type",
		},
		{
			name:    "bad annotation unit",
			yaml:    "name: m\nbeans:\n  - name: A\n    type: singleton\n    class: a.A\n    class_annotations:\n      access_timeout: {value: 1, unit: fortnights}\n",
			wantMsg: "unknown time unit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))

	_, err = Parse([]byte("name: m\nbeans:\n  - name: A\n    type: stateless\n    class: a.A\n    async_methods:\n      - {name: x, params: {a: b}}\n"))
	assert.Error(t, err)
}

func TestLoadAlternateFileName(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", DefaultFileName))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ejb-module.yml"), data, 0o600))

	mod, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, mod.Beans, 2)
}
