// internal/types/types.go
package types

// EntityID — stable entity identifier. Allocated monotonically, never reused
// within one level, so lower IDs always belong to older entities.
type EntityID uint64

// NoEntity is the zero handle value; the registry never hands it out.
const NoEntity EntityID = 0
