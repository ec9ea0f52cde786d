package component

// Health — компонент здоровья
type Health struct {
	Current int
	Max     int
}

// Alive reports whether any health remains.
func (h *Health) Alive() bool {
	return h.Current > 0
}
