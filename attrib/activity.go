package attrib

// XMLActivitySessions applies activity-session rules to the methods of
// one view with the same precedence as container transactions.
func (r *Resolver) XMLActivitySessions(out *Resolved[ActivitySessionAttribute], view InterfaceType, methods []*Method, rules []ActivitySessionMethod) {
	for _, as := range rules {
		for _, me := range as.Methods {
			if !r.targets(me.BeanName, "activity-session") {
				continue
			}
			eachMatch(me, view, methods, func(k int, style Style) {
				out.apply(k, as.Attribute, style)
			})
		}
	}
}

// BeanManagedActivitySessions marks every slot bean-managed.
func BeanManagedActivitySessions(out *Resolved[ActivitySessionAttribute]) {
	for k := 0; k < out.Len(); k++ {
		out.force(k, ASBeanManaged)
	}
}

// CheckBMASFromXML warns once per activity-session element that names a
// bean-managed bean, and returns how many were ignored.
func (r *Resolver) CheckBMASFromXML(rules []ActivitySessionMethod) int {
	n := 0
	for _, as := range rules {
		for _, me := range as.Methods {
			if me.BeanName == r.bean.Name {
				n++
				r.logger.Warn("bean-managed activity session bean declares container activity session attributes",
					"code", "CNTR0068W", "method", me.Name)
			}
		}
	}
	return n
}
