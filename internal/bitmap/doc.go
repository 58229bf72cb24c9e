// Package bitmap provides compressed sets of uint32 identifiers.
//
// IDSet wraps a Roaring bitmap and is used to deduplicate parameter handles
// by index rather than by value.
package bitmap
