package state

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
	err  error
}

func (r *recorder) Enter()             { *r.log = append(*r.log, "enter "+r.name) }
func (r *recorder) Exit()              { *r.log = append(*r.log, "exit "+r.name) }
func (r *recorder) Draw(*ebiten.Image) {}

func (r *recorder) Update(float64) error {
	*r.log = append(*r.log, "update "+r.name)
	return r.err
}

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	assert.NoError(t, sm.Update(0.1), "empty machine is a no-op")

	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log, err: errors.New("quit")}

	sm.SetState(a)
	assert.NoError(t, sm.Update(0.1))
	sm.SetState(b)
	assert.EqualError(t, sm.Update(0.1), "quit")
	assert.Same(t, b, sm.Current())

	sm.SetState(nil)
	assert.Nil(t, sm.Current())
	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "update b", "exit b"}, log)
}
