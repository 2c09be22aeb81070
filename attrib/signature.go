package attrib

import (
	"slices"
	"strings"
)

// MethodKey returns name(p1,p2) with array parameters in source form.
func MethodKey(name string, params []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	writeParams(&b, params, ",")
	b.WriteByte(')')
	return b.String()
}

// MethodSignature returns name:p1,p2 with array parameters in source
// form.
func MethodSignature(m *Method) string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte(':')
	writeParams(&b, m.Params, ",")
	return b.String()
}

// MethodSignatureOnly returns the parameter types of m separated by
// single spaces.
func MethodSignatureOnly(m *Method) string {
	var b strings.Builder
	writeParams(&b, m.Params, " ")
	return b.String()
}

func writeParams(b *strings.Builder, params []string, sep string) {
	for i, p := range params {
		if i > 0 {
			b.WriteString(sep)
		}
		if strings.HasPrefix(p, "[") {
			p = ConvertArraySignature(p)
		}
		b.WriteString(p)
	}
}

var primitiveCodes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// ConvertArraySignature converts a runtime array type name to source
// form: "[[B" becomes "byte[][]" and "[Ljava.lang.String;" becomes
// "java.lang.String[]".
func ConvertArraySignature(sig string) string {
	dims := 0
	for dims < len(sig) && sig[dims] == '[' {
		dims++
	}
	if dims == len(sig) {
		return sig
	}
	var b strings.Builder
	switch code := sig[dims]; {
	case code == 'L':
		b.WriteString(strings.TrimSuffix(sig[dims+1:], ";"))
	case primitiveCodes[code] != "":
		b.WriteString(primitiveCodes[code])
	default:
		return sig
	}
	for range dims {
		b.WriteString("[]")
	}
	return b.String()
}

// NormalizeSignature removes a space that is followed by another space or
// by a bracket, so "byte [ ] []" becomes "byte[][]".
func NormalizeSignature(sig string) string {
	var b strings.Builder
	b.Grow(len(sig))
	for i := 0; i < len(sig); i++ {
		if sig[i] == ' ' && i+1 < len(sig) {
			switch sig[i+1] {
			case ' ', '[', ']':
				continue
			}
		}
		b.WriteByte(sig[i])
	}
	return b.String()
}

var jdiPrimitives = map[string]string{
	"void":    "V",
	"boolean": "Z",
	"int":     "I",
	"long":    "J",
	"double":  "D",
	"float":   "F",
	"char":    "C",
	"byte":    "B",
	"short":   "S",
}

// JDIEncoding returns the JVM descriptor of a runtime type name.
func JDIEncoding(typeName string) string {
	switch {
	case strings.HasPrefix(typeName, "["):
		return strings.ReplaceAll(typeName, ".", "/")
	case strings.IndexByte(typeName, '.') > 0:
		return "L" + strings.ReplaceAll(typeName, ".", "/") + ";"
	}
	if code, ok := jdiPrimitives[typeName]; ok {
		return code
	}
	return "L" + typeName + ";"
}

// JDIMethodSignature returns the JVM method descriptor of m. An empty
// ReturnType is void.
func JDIMethodSignature(m *Method) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range m.Params {
		b.WriteString(JDIEncoding(p))
	}
	b.WriteByte(')')
	ret := m.ReturnType
	if ret == "" {
		ret = "void"
	}
	b.WriteString(JDIEncoding(ret))
	return b.String()
}

// ParamsMatch reports whether descriptor parameters, written in source
// form with optional stray spaces, name the runtime parameter types.
func ParamsMatch(ddParams, types []string) bool {
	if len(ddParams) != len(types) {
		return false
	}
	for i, p := range ddParams {
		p = NormalizeSignature(strings.TrimSpace(p))
		if strings.HasPrefix(p, "[") {
			p = ConvertArraySignature(p)
		}
		t := types[i]
		if strings.HasPrefix(t, "[") {
			t = ConvertArraySignature(t)
		}
		if p != t {
			return false
		}
	}
	return true
}

// MethodsEqual reports whether a and b share name and parameter types.
func MethodsEqual(a, b *Method) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && slices.Equal(a.Params, b.Params)
}

// HomeMethodEquals reports whether a home method matches a bean method
// described by name and runtime argument types.
func HomeMethodEquals(home *Method, name string, argTypes []string) bool {
	if home == nil || argTypes == nil {
		return false
	}
	return home.Name == name && slices.Equal(home.Params, argTypes)
}

// FindMethod returns the index of the first method matching nm by name
// and parameters, or -1.
func FindMethod(nm NamedMethod, methods []*Method) int {
	name := strings.TrimSpace(nm.Name)
	for k, m := range methods {
		if m != nil && m.Name == name && ParamsMatch(nm.Params, m.Params) {
			return k
		}
	}
	return -1
}

// FindMatchingMethod returns the first method me selects by name and, if
// given, parameters. It ignores the interface and bean name of me.
func FindMatchingMethod(methods []*Method, me MethodElement) *Method {
	name := strings.TrimSpace(me.Name)
	for _, m := range methods {
		if m == nil || m.Name != name {
			continue
		}
		if me.Params == nil || ParamsMatch(me.Params, m.Params) {
			return m
		}
	}
	return nil
}
