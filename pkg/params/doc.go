// Package params implements a fixed-catalog, strongly-typed parameter
// registry: per-type descriptors, a type-erased handler table indexed by a
// small integer identifier, and an allocation-free property store with
// typed, raw-byte, and text accessors. The catalog is closed at build time;
// the table is immutable after construction and only store slots mutate.
package params
