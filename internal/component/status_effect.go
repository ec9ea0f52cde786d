// internal/component/status_effect.go
package component

// SlowEffect is one active slow on an enemy. Several may be active at once;
// the strongest intensity wins and each expires on its own timer.
type SlowEffect struct {
	Remaining float64 // seconds left
	Intensity float64 // fraction of speed removed, 0..1
}

// SlowSpec describes a slow to be applied on hit.
type SlowSpec struct {
	Duration  float64 `json:"duration"`
	Intensity float64 `json:"intensity"`
}
