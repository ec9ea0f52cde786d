package component

// Enemy представляет вражескую сущность, идущую по пути к цели.
type Enemy struct {
	DefID    string     // ID из enemies.json
	Path     []Position // Точки пути (центры клеток), не изменяются
	Progress float64    // Дробный индекс по точкам пути, только растёт
	Speed    float64    // Базовая скорость с учётом волны, пикселей в секунду
	Armor    int        // Плоское снижение урона
	Reward   int
	Wave     int
	Slows    []SlowEffect
	Escaped  bool // Дошёл до цели
}

// PathEnd is the largest progress value for this enemy's path.
func (e *Enemy) PathEnd() float64 {
	if len(e.Path) == 0 {
		return 0
	}
	return float64(len(e.Path) - 1)
}
