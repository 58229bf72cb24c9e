// Package arena provides a chunked slot allocator for float64 parameters.
//
// Slots are addressed by uint32 indices that stay valid for the lifetime of
// the arena. Storage grows one fixed-size chunk at a time, so growing never
// moves or copies existing slots.
//
// # Safety
//
// An Arena is not safe for concurrent mutation.
package arena
