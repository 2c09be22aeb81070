package attrib

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLActivitySessions(t *testing.T) {
	methods := claimMethods()
	r := NewResolver(claimBean(Stateful), WithLogger(discardLogger()))
	out := NewResolved[ActivitySessionAttribute](len(methods))

	r.XMLActivitySessions(out, Remote, methods, []ActivitySessionMethod{
		{Attribute: ASRequired, Methods: []MethodElement{{BeanName: "ClaimBean", Name: "*"}}},
		{Attribute: ASNever, Methods: []MethodElement{{BeanName: "ClaimBean", Name: "upload", Params: []string{"byte [ ]"}}}},
		{Attribute: ASSupports, Methods: []MethodElement{{BeanName: "ClaimBean", Name: "*"}}},
	})

	assert.Equal(t, []ActivitySessionAttribute{ASSupports, ASSupports, ASSupports, ASNever}, out.Values())
}

func TestBeanManagedActivitySessions(t *testing.T) {
	out := NewResolved[ActivitySessionAttribute](3)
	out.Seed(1, ASRequired)
	BeanManagedActivitySessions(out)
	assert.Equal(t, []ActivitySessionAttribute{ASBeanManaged, ASBeanManaged, ASBeanManaged}, out.Values())
}

func TestCheckBMASFromXML(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(claimBean(Stateful), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	n := r.CheckBMASFromXML([]ActivitySessionMethod{
		{Attribute: ASRequired, Methods: []MethodElement{{BeanName: "ClaimBean", Name: "*"}, {BeanName: "ClaimBean", Name: "status"}}},
	})
	assert.Equal(t, 2, n)
	assert.Contains(t, buf.String(), "CNTR0068W")
}

func TestParseActivitySessionAttribute(t *testing.T) {
	got, err := ParseActivitySessionAttribute("RequiresNew")
	require.NoError(t, err)
	assert.Equal(t, ASRequiresNew, got)

	got, err = ParseActivitySessionAttribute("AS_NOT_SUPPORTED")
	require.NoError(t, err)
	assert.Equal(t, ASNotSupported, got)

	_, err = ParseActivitySessionAttribute("unknown")
	assert.Error(t, err)
}
