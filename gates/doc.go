// Package gates implements logic gates from ttlsim transistors.
//
// Outside this package, raw transistors are basically not used, and
// everything downstream is built from these gates and the composite
// circuits (adders, an SR latch) layered on top of them.
package gates
