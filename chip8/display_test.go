package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayClear(t *testing.T) {
	d := Display{}

	d.SetPixel(0, 0)
	d.SetPixel(63, 31)
	d.Clear()

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			require.False(t, d.Pixel(x, y))
		}
	}
}

func TestDisplayWrap(t *testing.T) {
	d := Display{}

	// coordinates wrap on both axes
	d.SetPixel(DisplayWidth+3, DisplayHeight+4)
	assert.True(t, d.Pixel(3, 4))

	d.SetPixel(-1, -1)
	assert.True(t, d.Pixel(DisplayWidth-1, DisplayHeight-1))
}

func TestDrawRow(t *testing.T) {
	d := Display{}

	d.Draw([]byte{0xFF}, 0, 0)

	for x := 0; x < 8; x++ {
		assert.True(t, d.Pixel(x, 0), "column %d", x)
	}
	assert.False(t, d.Pixel(8, 0))
	assert.False(t, d.Pixel(0, 1))
}

func TestDrawLeavesLitPixelsLit(t *testing.T) {
	d := Display{}

	d.Draw([]byte{0xFF}, 0, 0)
	d.Draw([]byte{0xFF}, 0, 0)

	// a second draw never extinguishes pixels
	for x := 0; x < 8; x++ {
		assert.True(t, d.Pixel(x, 0), "column %d", x)
	}
}

func TestDrawWrapsColumns(t *testing.T) {
	d := Display{}

	// origin column 60: columns 60-63 then 0-3
	d.Draw([]byte{0xFF}, 60, 0)

	for x := 60; x < 64; x++ {
		assert.True(t, d.Pixel(x, 0), "column %d", x)
	}
	for x := 0; x < 4; x++ {
		assert.True(t, d.Pixel(x, 0), "column %d", x)
	}
	assert.False(t, d.Pixel(4, 0))
	assert.False(t, d.Pixel(59, 0))
}

func TestDrawWrapsRows(t *testing.T) {
	d := Display{}

	// origin row 31: rows 31 then 0
	d.Draw([]byte{0x80, 0x80}, 0, 31)

	assert.True(t, d.Pixel(0, 31))
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(0, 1))
}

func TestDrawSkipsZeroBits(t *testing.T) {
	d := Display{}

	d.Draw([]byte{0xA5}, 0, 0)

	want := []bool{true, false, true, false, false, true, false, true}
	for x, on := range want {
		assert.Equal(t, on, d.Pixel(x, 0), "column %d", x)
	}
}

// The draw opcode clears the collision flag: the turn-on-only compositor
// never extinguishes a pixel, so the flag never reports a collision.
func TestDrawOpcodeCollisionFlag(t *testing.T) {
	vm := newTestVM(t, 0xD011, 0xD011)
	vm.I = 0x400
	vm.Memory[0x400] = 0xFF
	vm.V[0xF] = 1

	require.NoError(t, vm.Step())
	assert.Equal(t, byte(0), vm.V[0xF])
	for x := 0; x < 8; x++ {
		assert.True(t, vm.Screen.Pixel(x, 0))
	}

	// drawing again leaves the pixels and the flag alone
	vm.V[0xF] = 1
	require.NoError(t, vm.Step())
	assert.Equal(t, byte(0), vm.V[0xF])
	for x := 0; x < 8; x++ {
		assert.True(t, vm.Screen.Pixel(x, 0))
	}
}

func TestDrawOpcodeUsesRegisters(t *testing.T) {
	vm := newTestVM(t, 0xD232)
	vm.I = 0x400
	vm.Memory[0x400] = 0xC0
	vm.Memory[0x401] = 0xC0
	vm.V[2] = 10
	vm.V[3] = 20

	require.NoError(t, vm.Step())

	for _, p := range [][2]int{{10, 20}, {11, 20}, {10, 21}, {11, 21}} {
		assert.True(t, vm.Screen.Pixel(p[0], p[1]), "pixel %v", p)
	}
	assert.False(t, vm.Screen.Pixel(12, 20))
}
