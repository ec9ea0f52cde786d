// internal/defs/types.go
package defs

import "strings"

// CardType — категория карты.
type CardType string

const (
	CardAttack   CardType = "Attack"
	CardBuilding CardType = "Building"
	CardUtility  CardType = "Utility"
)

// ParseCardType accepts any letter case.
func ParseCardType(s string) (CardType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attack":
		return CardAttack, true
	case "building":
		return CardBuilding, true
	case "utility":
		return CardUtility, true
	}
	return "", false
}

// EffectKind — что делает карта при розыгрыше.
type EffectKind string

const (
	EffectPlaceTower EffectKind = "place_tower"
	EffectDamageArea EffectKind = "damage_area"
	EffectSlowArea   EffectKind = "slow_area"
	EffectGainEnergy EffectKind = "gain_energy"
	EffectDrawCards  EffectKind = "draw_cards"
	EffectHeal       EffectKind = "heal"
)

// EffectDef is the effect descriptor of a card. Only the fields used by Kind are read.
type EffectDef struct {
	Kind      EffectKind `json:"kind"`
	Tower     string     `json:"tower,omitempty"`
	Damage    int        `json:"damage,omitempty"`
	Radius    float64    `json:"radius,omitempty"`
	Intensity float64    `json:"intensity,omitempty"`
	Duration  float64    `json:"duration,omitempty"`
	Amount    int        `json:"amount,omitempty"`
	Count     int        `json:"count,omitempty"`
}

// CardDefinition — запись из cards.json.
type CardDefinition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cost        int       `json:"cost"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Effect      EffectDef `json:"effect"`
	Copies      int       `json:"copies,omitempty"` // Сколько копий положить в колоду, по умолчанию 1
}

// Point — координата клетки в файле карты.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapDefinition mirrors the map file.
type MapDefinition struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Tiles       [][]int `json:"tiles"`
	SpawnPoints []Point `json:"spawn_points"`
	TowerSlots  []Point `json:"tower_slots"`
	GoalPoints  []Point `json:"goal_points"`
}

// WaveGroup — часть состава волны.
type WaveGroup struct {
	EnemyID string `json:"enemy"`
	Count   int    `json:"count"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Enemies       []WaveGroup `json:"enemies"`
	Count         int         `json:"count"`          // Количество врагов в волне
	SpawnInterval float64     `json:"spawn_interval"` // Секунды между появлением врагов
}

// Sequence expands the composition into the per-spawn enemy order.
func (w WaveDefinition) Sequence() []string {
	var seq []string
	for _, g := range w.Enemies {
		for i := 0; i < g.Count; i++ {
			seq = append(seq, g.EnemyID)
		}
	}
	return seq
}
