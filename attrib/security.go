package attrib

import "github.com/zero-day-ai/ejbmeta/cfgerr"

// Disposition is the effective access decision for a method.
type Disposition int

const (
	DispositionPermitAll Disposition = iota
	DispositionDenyAll
	DispositionRoles
)

func (d Disposition) String() string {
	switch d {
	case DispositionDenyAll:
		return "deny-all"
	case DispositionRoles:
		return "roles"
	}
	return "permit-all"
}

// Permission is the resolved security policy of one method.
type Permission struct {
	DenyAll   bool
	PermitAll bool
	Roles     []string
}

// Disposition returns DenyAll over PermitAll over Roles, and PermitAll
// when nothing was configured.
func (p Permission) Disposition() Disposition {
	switch {
	case p.DenyAll:
		return DispositionDenyAll
	case p.PermitAll:
		return DispositionPermitAll
	case p.Roles != nil:
		return DispositionRoles
	}
	return DispositionPermitAll
}

func (p Permission) configured() bool {
	return p.DenyAll || p.PermitAll || p.Roles != nil
}

// Permissions holds one Permission per method slot.
type Permissions struct {
	perms []Permission
}

// NewPermissions returns n unconfigured permissions.
func NewPermissions(n int) *Permissions {
	return &Permissions{perms: make([]Permission, n)}
}

// Len returns the number of slots.
func (p *Permissions) Len() int { return len(p.perms) }

// Get returns the permission of slot i.
func (p *Permissions) Get(i int) Permission { return p.perms[i] }

// XMLExcludeList marks every method an exclude-list rule selects as
// deny-all.
func (r *Resolver) XMLExcludeList(out *Permissions, view InterfaceType, methods []*Method, rules []ExcludeList) {
	for _, ex := range rules {
		for _, me := range ex.Methods {
			if !r.targets(me.BeanName, "exclude-list") {
				continue
			}
			eachMatch(me, view, methods, func(k int, _ Style) {
				out.perms[k].DenyAll = true
			})
		}
	}
}

// XMLPermissions applies method-permission rules. Every matching rule
// contributes: unchecked rules set permit-all, the others append roles.
func (r *Resolver) XMLPermissions(out *Permissions, view InterfaceType, methods []*Method, rules []MethodPermission) {
	for _, mp := range rules {
		for _, me := range mp.Methods {
			if !r.targets(me.BeanName, "method-permission") {
				continue
			}
			eachMatch(me, view, methods, func(k int, _ Style) {
				p := &out.perms[k]
				if mp.Unchecked {
					p.PermitAll = true
					return
				}
				if p.Roles == nil {
					p.Roles = make([]string, 0, len(mp.Roles))
				}
				p.Roles = append(p.Roles, mp.Roles...)
			})
		}
	}
}

// AnnotationSecurity fills the slots XML left unconfigured from DenyAll,
// PermitAll and RolesAllowed annotations. Method annotations take
// precedence over class annotations.
func (r *Resolver) AnnotationSecurity(out *Permissions, methods []*Method) error {
	for k, m := range methods {
		if m == nil || out.perms[k].configured() {
			continue
		}
		p := &out.perms[k]
		_, deny := r.annotations.MethodAnnotation(m, DenyAllAnnotation)
		_, permit := r.annotations.MethodAnnotation(m, PermitAllAnnotation)
		roles, hasRoles := r.annotations.MethodAnnotation(m, RolesAllowedAnnotation)

		if conflict := conflicting(hasRoles, permit, deny); conflict != "" {
			return r.configError(cfgerr.CodeConflictingMethodAnnotations,
				"%s are both set on class %s method %s", conflict, r.classOf(m), m.Name).
				WithDetails(map[string]any{"method": m.Key(), "class": r.classOf(m), "annotations": conflict})
		}
		if deny || permit || hasRoles {
			p.DenyAll, p.PermitAll = deny, permit
			if hasRoles {
				list, err := r.uniqueRoles(roles.Roles, cfgerr.CodeDuplicateMethodRole, m)
				if err != nil {
					return err
				}
				p.Roles = list
			}
			continue
		}

		class := r.classOf(m)
		_, deny = r.annotations.ClassAnnotation(class, DenyAllAnnotation)
		_, permit = r.annotations.ClassAnnotation(class, PermitAllAnnotation)
		roles, hasRoles = r.annotations.ClassAnnotation(class, RolesAllowedAnnotation)
		if conflict := conflicting(hasRoles, permit, deny); conflict != "" {
			return r.configError(cfgerr.CodeConflictingClassAnnotations,
				"%s must not both be set on class %s", conflict, class).
				WithDetails(map[string]any{"class": class, "annotations": conflict})
		}
		switch {
		case hasRoles:
			list, err := r.uniqueRoles(roles.Roles, cfgerr.CodeDuplicateClassRole, m)
			if err != nil {
				return err
			}
			p.Roles = list
		case permit:
			p.PermitAll = true
		case deny:
			p.DenyAll = true
		}
	}
	return nil
}

// conflicting names the first pair of mutually exclusive annotations
// present, or returns "".
func conflicting(roles, permit, deny bool) string {
	switch {
	case permit && deny:
		return "@PermitAll and @DenyAll"
	case roles && permit:
		return "@RolesAllowed and @PermitAll"
	case roles && deny:
		return "@RolesAllowed and @DenyAll"
	}
	return ""
}

func (r *Resolver) uniqueRoles(roles []string, code string, m *Method) ([]string, error) {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		if _, dup := seen[role]; dup {
			details := map[string]any{"class": r.classOf(m), "role": role}
			msg := "role %s is defined multiple times on @RolesAllowed of class %s"
			args := []any{role, r.classOf(m)}
			if code == cfgerr.CodeDuplicateMethodRole {
				details["method"] = m.Key()
				msg += " method %s"
				args = append(args, m.Name)
			}
			return nil, r.configError(code, msg, args...).WithDetails(details)
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out, nil
}
