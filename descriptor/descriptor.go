package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names Load looks for when given a directory.
const (
	DefaultFileName = "ejb-module.yaml"
	altFileName     = "ejb-module.yml"
)

// Module is one deployed module: its beans and the assembly rules that
// apply to them.
type Module struct {
	Name        string `yaml:"name"`
	Application string `yaml:"application,omitempty"`

	// Version is the naming era, 1, 2 or 3. Zero means 3.
	Version int `yaml:"version,omitempty"`

	// MetadataComplete disables annotation lookups for every bean.
	MetadataComplete bool `yaml:"metadata_complete,omitempty"`

	Beans    []Bean   `yaml:"beans"`
	Assembly Assembly `yaml:"assembly,omitempty"`
}

// Bean describes one enterprise bean.
type Bean struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Class string `yaml:"class"`

	// Interfaces
	RemoteHome     string   `yaml:"remote_home,omitempty"`
	Remote         string   `yaml:"remote,omitempty"`
	LocalHome      string   `yaml:"local_home,omitempty"`
	Local          string   `yaml:"local,omitempty"`
	BusinessRemote []string `yaml:"business_remote,omitempty"`
	BusinessLocal  []string `yaml:"business_local,omitempty"`
	PrimaryKey     string   `yaml:"primary_key,omitempty"`

	// Management styles: "container" (default) or "bean".
	TransactionType       string `yaml:"transaction_type,omitempty"`
	ActivitySessionType   string `yaml:"activity_session_type,omitempty"`
	ConcurrencyManagement string `yaml:"concurrency_management,omitempty"`

	MetadataComplete bool `yaml:"metadata_complete,omitempty"`

	Methods          Views        `yaml:"methods,omitempty"`
	ClassAnnotations *Annotations `yaml:"class_annotations,omitempty"`

	ConcurrentMethods    []ConcurrentMethod `yaml:"concurrent_methods,omitempty"`
	AsyncMethods         []NamedMethod      `yaml:"async_methods,omitempty"`
	StatefulTimeout      *Timeout           `yaml:"stateful_timeout,omitempty"`
	DefaultAccessTimeout *Timeout           `yaml:"default_access_timeout,omitempty"`
}

// Views lists the methods of a bean per interface view.
type Views struct {
	Remote          []Method `yaml:"remote,omitempty"`
	Home            []Method `yaml:"home,omitempty"`
	Local           []Method `yaml:"local,omitempty"`
	LocalHome       []Method `yaml:"local_home,omitempty"`
	ServiceEndpoint []Method `yaml:"service_endpoint,omitempty"`
	Timer           []Method `yaml:"timer,omitempty"`
	MessageEndpoint []Method `yaml:"message_endpoint,omitempty"`
	Lifecycle       []Method `yaml:"lifecycle,omitempty"`
}

// Method is one method of a bean. Params are runtime type names
// ("int", "[B", "java.lang.String").
type Method struct {
	Name        string       `yaml:"name"`
	Params      Params       `yaml:"params,omitempty"`
	Return      string       `yaml:"return,omitempty"`
	Class       string       `yaml:"class,omitempty"` // declaring class, defaults to the bean class
	Annotations *Annotations `yaml:"annotations,omitempty"`
}

// Annotations are the source annotations on a method or class.
type Annotations struct {
	Transaction     string   `yaml:"transaction,omitempty"`
	Lock            string   `yaml:"lock,omitempty"`
	AccessTimeout   *Timeout `yaml:"access_timeout,omitempty"`
	Asynchronous    bool     `yaml:"asynchronous,omitempty"`
	DenyAll         bool     `yaml:"deny_all,omitempty"`
	PermitAll       bool     `yaml:"permit_all,omitempty"`
	RolesAllowed    []string `yaml:"roles_allowed,omitempty"`
	StatefulTimeout *Timeout `yaml:"stateful_timeout,omitempty"` // class level only
}

// Timeout is a value with a unit name; the unit defaults to milliseconds.
type Timeout struct {
	Value int64  `yaml:"value"`
	Unit  string `yaml:"unit,omitempty"`
}

// NamedMethod names a method inside a bean element.
type NamedMethod struct {
	Name   string `yaml:"name"`
	Params Params `yaml:"params,omitempty"`
}

// ConcurrentMethod sets the lock and access timeout of methods.
type ConcurrentMethod struct {
	Method        NamedMethod `yaml:"method"`
	Lock          string      `yaml:"lock,omitempty"`
	AccessTimeout *Timeout    `yaml:"access_timeout,omitempty"`
}

// Assembly holds module-wide rules that name beans explicitly.
type Assembly struct {
	ContainerTransactions []ContainerTransaction `yaml:"container_transactions,omitempty"`
	MethodPermissions     []MethodPermission     `yaml:"method_permissions,omitempty"`
	ExcludeList           []MethodElement        `yaml:"exclude_list,omitempty"`
	ActivitySessions      []ActivitySession      `yaml:"activity_sessions,omitempty"`
}

// MethodElement selects methods of one bean.
type MethodElement struct {
	Bean      string `yaml:"bean"`
	Interface string `yaml:"interface,omitempty"`
	Name      string `yaml:"name"`
	Params    Params `yaml:"params,omitempty"`
}

// ContainerTransaction assigns a transaction attribute.
type ContainerTransaction struct {
	Attribute string          `yaml:"attribute"`
	Methods   []MethodElement `yaml:"methods"`
}

// MethodPermission grants roles, or marks methods unchecked.
type MethodPermission struct {
	Roles     []string        `yaml:"roles,omitempty"`
	Unchecked bool            `yaml:"unchecked,omitempty"`
	Methods   []MethodElement `yaml:"methods"`
}

// ActivitySession assigns an activity session attribute.
type ActivitySession struct {
	Attribute string          `yaml:"attribute"`
	Methods   []MethodElement `yaml:"methods"`
}

// Load reads and parses a module descriptor. If path is a directory, it
// looks for ejb-module.yaml, then ejb-module.yml.
func Load(path string) (*Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	file := path
	if info.IsDir() {
		file = ""
		for _, name := range []string{DefaultFileName, altFileName} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				file = candidate
				break
			}
		}
		if file == "" {
			return nil, fmt.Errorf("no %s or %s found in %s", DefaultFileName, altFileName, path)
		}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a module descriptor.
func Parse(data []byte) (*Module, error) {
	var mod Module
	if err := yaml.Unmarshal(data, &mod); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	if err := mod.Validate(); err != nil {
		return nil, err
	}
	return &mod, nil
}

// Bean returns the bean named name.
func (m *Module) Bean(name string) (*Bean, bool) {
	for i := range m.Beans {
		if m.Beans[i].Name == name {
			return &m.Beans[i], true
		}
	}
	return nil, false
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid descriptor")
