package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateBeanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Claim", "Claim"},
		{"  My-Bean.v2  ", "My_Bean_v2"},
		{"Order Service", "Order_Service"},
		{"Café Bean", "Café_Bean"},
		{strings.Repeat("a", 40), strings.Repeat("a", 32)},
		{"\tTabbed\n", "Tabbed"},
		{"a\U0001F600b", "a__b"},
		{strings.Repeat("a", 31) + "\U0001F600", strings.Repeat("a", 31) + "_"},
		{strings.Repeat("\u00e9", 33), strings.Repeat("\u00e9", 32)},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateBeanName(tt.in))
		})
	}
}

func TestPackageAndRelativeName(t *testing.T) {
	assert.Equal(t, "com.acme", PackageName("com.acme.Claim"))
	assert.Equal(t, "", PackageName("Claim"))
	assert.Equal(t, "", PackageName(""))

	assert.Equal(t, "Claim", RelativeName("com.acme.Claim"))
	assert.Equal(t, "Claim", RelativeName("Claim"))
	assert.Equal(t, "acme", RelativeName("com.acme."))
	assert.Equal(t, "", RelativeName(""))
}

func TestAggregateLocalImplClassName(t *testing.T) {
	assert.Equal(t, "p.EJSLocalASLFoo_12345678", AggregateLocalImplClassName("p.EJSLocal0SLFoo_12345678"))
	assert.Equal(t, "p.EJSLocal.EJSLocalASLFoo_1", AggregateLocalImplClassName("p.EJSLocal.EJSLocalNSLFoo_1"))
	assert.Equal(t, "p.Other", AggregateLocalImplClassName("p.Other"))
}

func TestParseBeanType(t *testing.T) {
	for in, want := range map[string]BeanType{
		"SL":             Stateless,
		"stateful":       Stateful,
		"singleton":      Singleton,
		"cmp":            ContainerManaged,
		"bean-managed":   BeanManaged,
		"message-driven": MessageDriven,
		"managed":        ManagedBean,
	} {
		got, err := ParseBeanType(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBeanType("entity")
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}

func TestHashStringOrder(t *testing.T) {
	id := Identity{
		BeanName:       "B",
		RemoteHome:     "1",
		Remote:         "2",
		LocalHome:      "3",
		Local:          "4",
		BusinessRemote: []string{"5", "6"},
		BusinessLocal:  []string{"7"},
		BeanClass:      "8",
		PrimaryKey:     "9",
	}
	assert.Equal(t, "B123456789", id.HashString())
}
