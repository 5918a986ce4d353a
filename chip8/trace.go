package chip8

import "fmt"

// History records the disassembly of recently executed instructions in a
// fixed-size ring. The host attaches one with SetTrace and dumps it when
// emulation faults, so a diagnostic shows the instructions leading up to
// the faulting opcode.
type History struct {
	// buf holds one formatted line per executed instruction.
	buf []string

	// next is the ring position the next line is written to.
	next int

	// wrapped is true once the ring has been filled at least once.
	wrapped bool
}

// NewHistory creates a history ring holding the last n instructions.
func NewHistory(n int) *History {
	if n <= 0 {
		n = 16
	}

	return &History{buf: make([]string, n)}
}

// Record adds an executed instruction to the ring.
func (h *History) Record(pc uint16, op Opcode) {
	h.buf[h.next] = fmt.Sprintf("%04X - %s", pc, op)

	h.next++
	if h.next == len(h.buf) {
		h.next = 0
		h.wrapped = true
	}
}

// Tail returns the recorded lines, oldest first.
func (h *History) Tail() []string {
	if !h.wrapped {
		return append([]string(nil), h.buf[:h.next]...)
	}

	out := make([]string, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	out = append(out, h.buf[:h.next]...)

	return out
}
