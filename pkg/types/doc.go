// Package types defines the small set of types shared across dashkit:
// the filesystem interface, the relocation operation and element kinds,
// and the context resolver used when an address omits its dashboard.
package types
