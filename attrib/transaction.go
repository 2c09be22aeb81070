package attrib

// XMLTransactions applies container-transaction rules to the methods of
// one view. Later rules of equal style win.
func (r *Resolver) XMLTransactions(out *Resolved[TxAttribute], view InterfaceType, methods []*Method, rules []ContainerTransaction) {
	statefulLC := r.isStatefulLifecycle(view)
	for _, ct := range rules {
		for _, me := range ct.Methods {
			if !r.targets(me.BeanName, "container-transaction") {
				continue
			}
			if statefulLC && me.Interface == Unspecified {
				// Lifecycle callbacks of a stateful bean only take a
				// wildcard that names the lifecycle view explicitly, and
				// never a rule meant for a same-named business method.
				if styleOf(me) == WildcardNoFilter {
					continue
				}
				if FindMatchingMethod(r.bean.BusinessMethods, me) != nil {
					continue
				}
			}
			eachMatch(me, view, methods, func(k int, style Style) {
				out.apply(k, ct.Attribute, style)
			})
		}
	}
}

// AnnotationTransactions fills every slot the XML phase left unset, from
// the method annotation, then the class annotation, then the default.
func (r *Resolver) AnnotationTransactions(out *Resolved[TxAttribute], view InterfaceType, methods []*Method) {
	statefulLC := r.isStatefulLifecycle(view)
	for k, m := range methods {
		if out.IsSet(k) {
			continue
		}
		if !r.bean.MetadataComplete && m != nil {
			if a, ok := r.annotations.MethodAnnotation(m, TransactionAttributeAnnotation); ok {
				out.fill(k, a.Transaction)
				continue
			}
			if !statefulLC {
				if a, ok := r.annotations.ClassAnnotation(r.classOf(m), TransactionAttributeAnnotation); ok {
					out.fill(k, a.Transaction)
					continue
				}
			}
		}
		if statefulLC {
			out.fill(k, TxNotSupported)
		} else {
			out.fill(k, TxRequired)
		}
	}
}

// CheckTxAttrs overwrites the attribute of every method whose name and
// signature appear in checked, or every method when checked holds "*".
func CheckTxAttrs(out *Resolved[TxAttribute], names, signatures, checkedNames, checkedSignatures []string, prescribed TxAttribute) {
	for i := range names {
		for j := range checkedNames {
			if checkedNames[j] == Wildcard ||
				(names[i] == checkedNames[j] && signatures[i] == checkedSignatures[j]) {
				out.force(i, prescribed)
				break
			}
		}
	}
}

// CheckBMTFromXML warns once per container-transaction element that names
// a bean-managed bean, and returns how many were ignored.
func (r *Resolver) CheckBMTFromXML(rules []ContainerTransaction) int {
	n := 0
	for _, ct := range rules {
		for _, me := range ct.Methods {
			if me.BeanName == r.bean.Name {
				n++
				r.logger.Warn("bean-managed transaction bean declares container transaction attributes",
					"code", "CNTR0067W", "method", me.Name)
			}
		}
	}
	return n
}

// CheckBMTFromAnnotations warns once per method of a bean-managed bean
// that carries a transaction attribute annotation, and returns the count.
func (r *Resolver) CheckBMTFromAnnotations(methods []*Method) int {
	n := 0
	for _, m := range methods {
		if m == nil {
			continue
		}
		_, ok := r.annotations.MethodAnnotation(m, TransactionAttributeAnnotation)
		if !ok {
			_, ok = r.annotations.ClassAnnotation(r.classOf(m), TransactionAttributeAnnotation)
		}
		if ok {
			n++
			r.logger.Warn("bean-managed transaction bean declares container transaction attributes",
				"code", "CNTR0067W", "method", m.Key())
		}
	}
	return n
}
