// internal/entity/ecs.go
package entity

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/types"
)

// Kind — тип сущности; определяет, какая полезная нагрузка заполнена.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindTower
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindTower:
		return "tower"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Group — именованная группа для итерации и проверки столкновений.
type Group string

const (
	GroupPlayer      Group = "player"
	GroupEnemies     Group = "enemies"
	GroupTowers      Group = "towers"
	GroupProjectiles Group = "projectiles"
)

// Entity — общий набор компонентов плюс ровно одна полезная нагрузка по Kind.
type Entity struct {
	ID       types.EntityID
	Kind     Kind
	Group    Group
	Position component.Position
	Health   *component.Health
	Shape    component.Circle
	Dead     bool

	Enemy      *component.Enemy
	Tower      *component.Tower
	Projectile *component.Projectile
	Player     *component.Player
}

// Alive — сущность не помечена на удаление.
func (e *Entity) Alive() bool {
	return !e.Dead
}

// Updater advances one entity of a given kind by dt.
type Updater interface {
	UpdateEntity(e *Entity, dt float64)
}

// UpdaterFunc adapts a function to Updater.
type UpdaterFunc func(e *Entity, dt float64)

func (f UpdaterFunc) UpdateEntity(e *Entity, dt float64) { f(e, dt) }

// Pair is one overlapping pair returned by CheckCollisions.
type Pair struct {
	A, B *Entity
}

// Registry владеет всеми динамическими сущностями уровня.
// Удаление отложенное: Remove только помечает сущность, а вычищает её CleanupDead
// в конце тика, поэтому ни один проход не видит наполовину удалённый набор.
type Registry struct {
	GameTime float64
	NextID   types.EntityID

	entities   map[types.EntityID]*Entity
	groups     map[Group][]*Entity
	groupOrder []Group
	updaters   map[Kind]Updater
}

func NewRegistry() *Registry {
	return &Registry{
		NextID:   1,
		entities: make(map[types.EntityID]*Entity),
		groups:   make(map[Group][]*Entity),
		updaters: make(map[Kind]Updater),
	}
}

func (r *Registry) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// Add registers e in group, assigning an ID if it has none.
func (r *Registry) Add(e *Entity, group Group) types.EntityID {
	if e.ID == types.NoEntity {
		e.ID = r.NewEntity()
	} else if _, exists := r.entities[e.ID]; exists {
		return e.ID
	} else if e.ID >= r.NextID {
		r.NextID = e.ID + 1
	}
	e.Group = group
	r.entities[e.ID] = e
	if _, known := r.groups[group]; !known {
		r.groupOrder = append(r.groupOrder, group)
	}
	r.groups[group] = append(r.groups[group], e)
	return e.ID
}

// Remove flags the entity dead; it is purged by the next CleanupDead.
func (r *Registry) Remove(id types.EntityID) {
	if e, ok := r.entities[id]; ok {
		e.Dead = true
	}
}

// Get returns the entity even if it is flagged dead but not yet purged.
func (r *Registry) Get(id types.EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Lookup resolves a weak handle. A purged or dead entity is reported as stale (false).
func (r *Registry) Lookup(id types.EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	if !ok || !e.Alive() {
		return nil, false
	}
	return e, true
}

// EntitiesIn returns the group's members in insertion order, dead ones included
// until they are purged.
func (r *Registry) EntitiesIn(group Group) []*Entity {
	members := r.groups[group]
	out := make([]*Entity, len(members))
	copy(out, members)
	return out
}

// Live returns only the members not flagged dead, in insertion order.
func (r *Registry) Live(group Group) []*Entity {
	members := r.groups[group]
	out := make([]*Entity, 0, len(members))
	for _, e := range members {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) CountLive(group Group) int {
	n := 0
	for _, e := range r.groups[group] {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Len returns the number of registered entities, dead ones included.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Handle sets the updater used by UpdateAll for entities of kind k.
func (r *Registry) Handle(k Kind, u Updater) {
	r.updaters[k] = u
}

// UpdateAll dispatches every live entity to its kind's updater. Groups are visited in
// the order they were first used, members in insertion order. Entities added during
// the pass are not visited until the next one.
func (r *Registry) UpdateAll(dt float64) {
	for _, group := range r.groupOrder {
		for _, e := range r.EntitiesIn(group) {
			if e.Dead {
				continue
			}
			if u, ok := r.updaters[e.Kind]; ok {
				u.UpdateEntity(e, dt)
			}
		}
	}
}

// CheckCollisions returns live pairs from groups a and b whose bounding circles overlap,
// ordered by a's insertion order, then b's.
func (r *Registry) CheckCollisions(a, b Group) []Pair {
	var pairs []Pair
	others := r.Live(b)
	for _, ea := range r.Live(a) {
		for _, eb := range others {
			if ea == eb {
				continue
			}
			if component.Overlaps(ea.Position, ea.Shape, eb.Position, eb.Shape) {
				pairs = append(pairs, Pair{A: ea, B: eb})
			}
		}
	}
	return pairs
}

// CleanupDead purges every entity flagged dead and returns their IDs in purge order.
func (r *Registry) CleanupDead() []types.EntityID {
	var removed []types.EntityID
	for _, group := range r.groupOrder {
		members := r.groups[group]
		kept := members[:0]
		for _, e := range members {
			if e.Dead {
				removed = append(removed, e.ID)
				delete(r.entities, e.ID)
				continue
			}
			kept = append(kept, e)
		}
		for i := len(kept); i < len(members); i++ {
			members[i] = nil
		}
		r.groups[group] = kept
	}
	return removed
}
