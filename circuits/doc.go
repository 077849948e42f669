// Package circuits implements small digital logic devices using the
// gates package: adders and an SR latch.
package circuits
