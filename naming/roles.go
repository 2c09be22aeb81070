package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Role identifies one generated class of a bean.
type Role string

// Roles of generated classes.
const (
	RoleRemote         Role = "remote"
	RoleRemoteHome     Role = "remote-home"
	RoleLocal          Role = "local"
	RoleLocalHome      Role = "local-home"
	RoleHomeBean       Role = "home-bean"
	RoleConcreteBean   Role = "concrete-bean"
	RolePersister      Role = "persister"
	RoleEndpointProxy  Role = "endpoint-proxy"
	RoleMDBProxy       Role = "mdb-proxy"
	RoleAggregateLocal Role = "aggregate-local"
)

const (
	businessRemotePrefix = "business-remote/"
	businessLocalPrefix  = "business-local/"
)

// BusinessRemoteRole returns the role of the business remote wrapper at index.
func BusinessRemoteRole(index int) Role {
	return Role(businessRemotePrefix + strconv.Itoa(index))
}

// BusinessLocalRole returns the role of the business local wrapper at index.
func BusinessLocalRole(index int) Role {
	return Role(businessLocalPrefix + strconv.Itoa(index))
}

// Name returns the generated class name for role. Absent classes yield "".
func (n *Namer) Name(role Role) (string, error) {
	switch role {
	case RoleRemote:
		return n.RemoteImplClassName(), nil
	case RoleRemoteHome:
		return n.RemoteHomeImplClassName(), nil
	case RoleLocal:
		return n.LocalImplClassName()
	case RoleLocalHome:
		return n.LocalHomeImplClassName()
	case RoleHomeBean:
		return n.HomeBeanClassName(), nil
	case RoleConcreteBean:
		return n.ConcreteBeanClassName(), nil
	case RolePersister:
		return n.DeployedPersisterClassName(), nil
	case RoleEndpointProxy:
		return n.WebServiceEndpointProxyClassName(), nil
	case RoleMDBProxy:
		return n.MDBProxyClassName(), nil
	case RoleAggregateLocal:
		first, err := n.BusinessLocalImplClassName(0)
		if err != nil {
			return "", err
		}
		return AggregateLocalImplClassName(first), nil
	}

	s := string(role)
	if rest, ok := strings.CutPrefix(s, businessRemotePrefix); ok {
		i, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
		}
		return n.BusinessRemoteImplClassName(i)
	}
	if rest, ok := strings.CutPrefix(s, businessLocalPrefix); ok {
		i, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
		}
		return n.BusinessLocalImplClassName(i)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Roles lists the roles of the classes generated for this bean, in a stable
// order.
func (n *Namer) Roles() []Role {
	id := n.id
	var roles []Role

	if id.Remote != "" {
		roles = append(roles, RoleRemote)
	}
	if id.RemoteHome != "" {
		roles = append(roles, RoleRemoteHome)
	}
	if n.version > Version1 {
		if id.Local != "" {
			roles = append(roles, RoleLocal)
		}
		if id.LocalHome != "" {
			roles = append(roles, RoleLocalHome)
		}
	}
	if id.RemoteHome != "" || id.LocalHome != "" {
		roles = append(roles, RoleHomeBean)
	}
	if n.version >= Version3 {
		for i := range id.BusinessRemote {
			roles = append(roles, BusinessRemoteRole(i))
		}
		for i := range id.BusinessLocal {
			roles = append(roles, BusinessLocalRole(i))
		}
		if len(id.BusinessLocal) > 1 {
			roles = append(roles, RoleAggregateLocal)
		}
	}

	switch id.Type {
	case ContainerManaged:
		roles = append(roles, RoleConcreteBean, RolePersister)
	case BeanManaged:
		if n.version == Version2 {
			roles = append(roles, RoleConcreteBean)
		}
	case Stateless, Singleton:
		roles = append(roles, RoleEndpointProxy)
	case MessageDriven:
		roles = append(roles, RoleMDBProxy)
	}
	return roles
}

// Names resolves every role in Roles.
func (n *Namer) Names() (map[Role]string, error) {
	roles := n.Roles()
	names := make(map[Role]string, len(roles))
	var errs []error
	for _, r := range roles {
		name, err := n.Name(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r, err))
			continue
		}
		if name != "" {
			names[r] = name
		}
	}
	return names, errors.Join(errs...)
}
