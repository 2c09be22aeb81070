// Package ejbmeta assembles the container metadata of enterprise beans.
//
// For every bean of a module descriptor the Assembler produces two things:
// the names of the wrapper classes generated for the bean, and the
// resolved attributes of each method of each interface view (transaction
// attribute, activity session, security permission, asynchrony, lock type
// and access timeout).
//
// # Packages
//
// The work is split into packages that can also be used on their own:
//
//   - buzzhash: the 64-bit rolling hash behind generated name suffixes
//   - naming: generated class names and the load retry protocol
//   - attrib: merging of deployment rules with source annotations
//   - cfgerr: coded configuration errors
//   - descriptor: the YAML module descriptor
//   - store: persistence of naming state (memory or Redis)
//
// # Getting Started
//
//	mod, err := descriptor.Load("ejb-module.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	a, err := ejbmeta.NewAssembler(ejbmeta.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Close()
//
//	metas, err := a.AssembleModule(ctx, mod)
//
// # Hash Upgrades
//
// Classes generated by older tooling may carry a different hash suffix.
// Assembler.Locate tries the current name and then the older candidates,
// and records which generation worked in the store so later runs start
// from it.
//
// # Observability
//
// The Assembler emits the spans ejbmeta.Assemble and ejbmeta.Locate and
// the metrics ejbmeta.beans.assembled, ejbmeta.assembly.duration,
// ejbmeta.names.upgraded and ejbmeta.config.errors. Providers default to
// the global OpenTelemetry ones.
//
// # Error Handling
//
// Failures are returned as *Error with a Kind. Configuration failures wrap
// a *cfgerr.Error carrying the container message code:
//
//	var cfg *cfgerr.Error
//	if errors.As(err, &cfg) {
//		fmt.Println(cfg.Code)
//	}
package ejbmeta
