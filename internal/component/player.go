// internal/component/player.go
package component

// Player — данные сущности игрока, стоящей у цели.
type Player struct {
	Escapes int // Сколько врагов дошло до цели
}
