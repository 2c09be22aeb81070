// Package naming derives the names of the classes generated for a deployed
// bean.
//
// A Namer is built once per bean from its Identity: bean name, bean type tag,
// module era, and the names of its interfaces and classes. Every accessor is a
// deterministic function of that identity, so names generated by one server
// version can be found again by the next.
//
// # Name Format
//
// For a 3.x module, wrapper names follow
//
//	<package>.<prefix>[C|index|N]<type><translated bean name>[Home][Bean]_<suffix>
//
// where the prefix is one of EJSRemote, EJSLocal, EJS, WSEJBProxy or MDBProxy,
// "C" marks the single component interface, a numeric index or "N" marks a
// business interface or the no-interface view, and the suffix is eight hex
// digits of buzzhash over the bean's names.
//
// The 2.x era spells out Stateless and Stateful and omits "C". The 1.x era
// names wrappers after the interface they implement and only has remote
// views.
//
// # Hash Upgrades
//
// Older servers computed the suffix with the plain hash; newer ones use the
// anti-collision variant. When a generated class cannot be loaded, the
// caller asks for the next candidate:
//
//	name, err := naming.Locate(ctx, namer, namer.RemoteImplClassName(), loader)
//
// Locate walks original hash, modified hash and, for 1.x modules only, no
// suffix at all. The upgrade sticks to the Namer for every later name.
//
// # Absence and Misuse
//
// A bean without a given interface has no name for it: the accessor returns
// "". Asking for a name the era cannot have, such as a local wrapper in a
// 1.x module, returns ErrIllegalState.
package naming
