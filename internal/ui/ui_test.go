package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-card-defense/internal/config"
	"go-card-defense/internal/system"
	"go-card-defense/pkg/gridmap"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 20: "XX", 49: "XLIX", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "spawning 2/5", Caption(system.WaveInfo{Number: 1, Total: 3, Spawned: 2, Size: 5, State: system.WaveSpawning}, 0))
	assert.Equal(t, "clear the field", Caption(system.WaveInfo{Number: 1, Total: 3, State: system.WaveWaitingForClear}, 0))
	assert.Equal(t, "next wave in 4s", Caption(system.WaveInfo{Number: 1, Total: 3, State: system.WaveIdle}, 4.2))
	assert.Equal(t, "press N to call the next wave", Caption(system.WaveInfo{Total: 3}, 0))
	assert.Equal(t, "all waves sent", Caption(system.WaveInfo{Number: 3, Total: 3, State: system.WaveComplete}, 0))
}

func TestButton(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 50, 30), "ok")
	assert.True(t, b.Clicked(20, 20))
	assert.False(t, b.Clicked(50, 30), "max edge is exclusive")

	b.Disabled = true
	assert.True(t, b.Contains(20, 20))
	assert.False(t, b.Clicked(20, 20))
}

func TestHandView_HitTest(t *testing.T) {
	h := NewHandView(100, 500)
	assert.Equal(t, 0, h.HitTest(101, 501, 3))
	assert.Equal(t, 1, h.HitTest(100+CardWidth+CardSpacing+5, 510, 3))
	assert.Equal(t, -1, h.HitTest(100+CardWidth+1, 510, 3), "gap between cards")
	assert.Equal(t, -1, h.HitTest(100+3*(CardWidth+CardSpacing)+5, 510, 3), "beyond hand size")
}

func TestPipColor(t *testing.T) {
	// 20 max, 15 left: five pips above half are blue, the next ten red.
	assert.Equal(t, healthExtra, PipColor(0, 15, 20))
	assert.Equal(t, healthExtra, PipColor(4, 15, 20))
	assert.Equal(t, healthLow, PipColor(5, 15, 20))
	assert.Equal(t, color.Black, PipColor(15, 15, 20))
	assert.Equal(t, healthLow, PipColor(0, 8, 20))
}

func TestInfoPanel_Slide(t *testing.T) {
	p := NewInfoPanel(600)
	x := config.ScreenWidth - panelWidth
	assert.False(t, p.Contains(x, 590))

	p.SetTarget(gridmap.Cell{X: 2, Y: 3})
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.True(t, p.IsVisible)
	assert.True(t, p.Contains(x, 600-panelHeight+10))

	p.Hide()
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.False(t, p.IsVisible)
	assert.False(t, p.Contains(x, 600-panelHeight+10))
}
