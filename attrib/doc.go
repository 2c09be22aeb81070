// Package attrib resolves per-method runtime attributes of a bean by
// merging deployment descriptor rules with source annotations.
//
// Every concern works on parallel slices: a []*Method for one interface
// view and an accumulator holding one value per method. A nil method is
// skipped. Resolution runs in two phases:
//
//  1. The XML phase applies descriptor rules. A rule selects methods in
//     one of four styles, from "*" for every view up to a name with
//     parameter types, and a more specific style always wins. Rules of
//     equal style apply in order, so the later one wins.
//  2. The annotation phase only fills slots the XML phase left unset,
//     from the method annotation, then the class annotation, then the
//     default for the concern.
//
// Security is the exception: permissions accumulate roles across every
// matching rule, and annotations are consulted only for methods with no
// descriptor policy at all.
//
// Timeouts are stored in an internal form: milliseconds for positive
// values, NoWait for 0 and WaitForever for -1.
//
// Invalid configuration is reported as a *cfgerr.Error.
package attrib
