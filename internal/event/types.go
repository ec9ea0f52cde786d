// internal/event/types.go
package event

const (
	WaveStarted      EventType = "WaveStarted"   // Волна началась, Data: WaveData
	WaveCleared      EventType = "WaveCleared"   // Все враги волны убиты или ушли, Data: WaveData
	EnemySpawned     EventType = "EnemySpawned"  // Data: EnemyData
	EnemyKilled      EventType = "EnemyKilled"   // Data: EnemyData
	EnemyEscaped     EventType = "EnemyEscaped"  // Враг дошёл до цели, Data: EnemyData
	TowerPlaced      EventType = "TowerPlaced"   // Башня построена, Data: TowerData
	TowerUpgraded    EventType = "TowerUpgraded" // Data: TowerData
	ProjectileFired  EventType = "ProjectileFired"
	ProjectileMissed EventType = "ProjectileMissed"
	CardPlayed       EventType = "CardPlayed"    // Data: CardData
	TurnStarted      EventType = "TurnStarted"   // Data: int (номер хода)
	LevelEnded       EventType = "LevelEnded"    // Data: component.Outcome
)

// WaveData accompanies wave events.
type WaveData struct {
	Number int
	Size   int
}

// EnemyData accompanies enemy events.
type EnemyData struct {
	ID     uint64
	DefID  string
	Reward int
}

// TowerData accompanies tower events.
type TowerData struct {
	ID    uint64
	DefID string
	X, Y  int
	Level int
}

// CardData accompanies card events.
type CardData struct {
	CardID string
	Cost   int
}
