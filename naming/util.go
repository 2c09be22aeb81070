package naming

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// Class name prefixes.
const (
	RemotePrefix        = "EJSRemote"
	LocalPrefix         = "EJSLocal"
	HomeBeanPrefix      = "EJS"
	ConcreteBeanPrefix  = "Concrete"
	PersisterPrefix     = "EJSJDBCPersister"
	EndpointProxyPrefix = "WSEJBProxy"
	MDBProxyPrefix      = "MDBProxy"

	// DeployPackagePrefix is prepended to interface packages the class
	// loader refuses to define classes in.
	DeployPackagePrefix = "com.ibm.ejs.container.deploy."

	// MaxBeanNameSize is the longest translated bean name.
	MaxBeanNameSize = 32
)

// PackageName returns everything before the last '.', or "" when className
// has no package.
func PackageName(className string) string {
	if i := strings.LastIndexByte(className, '.'); i != -1 {
		return className[:i]
	}
	return ""
}

// RelativeName returns the last non-empty '.'-separated element of className.
func RelativeName(className string) string {
	fields := strings.FieldsFunc(className, func(r rune) bool { return r == '.' })
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// TranslateBeanName trims name, truncates it to MaxBeanNameSize UTF-16 code
// units and replaces every unit that is not a letter or digit with '_'. Both
// halves of a surrogate pair count as units and are replaced.
func TranslateBeanName(name string) string {
	name = strings.TrimFunc(name, func(r rune) bool { return r <= ' ' })

	units := utf16.Encode([]rune(name))
	if len(units) > MaxBeanNameSize {
		units = units[:MaxBeanNameSize]
	}
	for i, u := range units {
		r := rune(u)
		if utf16.IsSurrogate(r) || !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			units[i] = '_'
		}
	}
	return string(utf16.Decode(units))
}

// AggregateLocalImplClassName derives the name of the wrapper that exposes
// every business local interface from one business local wrapper name.
func AggregateLocalImplClassName(localImplClassName string) string {
	i := strings.LastIndex(localImplClassName, LocalPrefix)
	if i == -1 {
		return localImplClassName
	}
	at := i + len(LocalPrefix)
	if at >= len(localImplClassName) {
		return localImplClassName
	}
	return localImplClassName[:at] + "A" + localImplClassName[at+1:]
}

// writePackage writes pkg and a separating '.' when pkg is not empty.
func writePackage(b *strings.Builder, pkg string) {
	if pkg != "" {
		b.WriteString(pkg)
		b.WriteByte('.')
	}
}

// businessPackage returns the package for a business interface wrapper.
func businessPackage(intf string) string {
	pkg := PackageName(intf)
	if strings.HasPrefix(pkg, "java.") {
		return DeployPackagePrefix + pkg
	}
	return pkg
}

func isHexSuffix(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
