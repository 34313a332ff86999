package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Breakpoint stops ExecuteInstructions before the instruction at Address.
type Breakpoint struct {
	Address uint16
	Enabled bool
}

// AddBreakpoint adds an enabled breakpoint, replacing any at the same address.
func (cpu *Cpu) AddBreakpoint(address uint16) {
	if cpu.breakpoints == nil {
		cpu.breakpoints = make(map[uint16]Breakpoint)
	}
	cpu.breakpoints[address] = Breakpoint{Address: address, Enabled: true}
}

// RemoveBreakpoint removes the breakpoint at address, if there is one.
func (cpu *Cpu) RemoveBreakpoint(address uint16) {
	delete(cpu.breakpoints, address)
}

// EnableBreakpoint enables or disables an existing breakpoint.
func (cpu *Cpu) EnableBreakpoint(address uint16, enabled bool) (err error) {
	bp, ok := cpu.breakpoints[address]
	if !ok {
		err = ErrBreakpointMissing
		return
	}
	bp.Enabled = enabled
	cpu.breakpoints[address] = bp
	return
}

// ClearBreakpoints removes all breakpoints.
func (cpu *Cpu) ClearBreakpoints() {
	clear(cpu.breakpoints)
}

// Breakpoints iterates over all breakpoints in address order.
func (cpu *Cpu) Breakpoints() iter.Seq[Breakpoint] {
	return func(yield func(bp Breakpoint) bool) {
		for _, address := range slices.Sorted(maps.Keys(cpu.breakpoints)) {
			if !yield(cpu.breakpoints[address]) {
				return
			}
		}
	}
}

// breakpointAt returns true if there is an enabled breakpoint at address.
func (cpu *Cpu) breakpointAt(address uint16) bool {
	bp, ok := cpu.breakpoints[address]
	return ok && bp.Enabled
}
