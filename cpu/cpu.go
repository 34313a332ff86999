package cpu

import (
	"fmt"
	"log"
	"time"
)

// CHECKPOINT_INTERVAL is the number of instructions between checks of the
// ExecuteInstructions time budget.
const CHECKPOINT_INTERVAL = 1000

// Cpu is the simulation context for the Hack computer.
//
// A Cpu is not safe for concurrent use. The owner must not read its state
// while ExecuteInstructions is running.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc uint16 // Program counter.
	A  uint16 // Address register.
	D  uint16 // Data register.

	Ram [MEMORY_SIZE]uint16 // Data memory, including screen and keyboard.
	Rom [MEMORY_SIZE]uint16 // Instruction memory.

	HaltAddr uint16  // Address of the halt routine, 0 if unset.
	Speed    float64 // Instructions per microsecond of the last sliced run.
	Ticks    uint64  // Instructions executed.

	Keyboard Keyboard // Source of the keyboard word, may be nil.

	breakpoints map[uint16]Breakpoint
}

// NewCpu creates a new CPU with zeroed registers and memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		breakpoints: make(map[uint16]Breakpoint),
	}

	return
}

// Reset the CPU registers and counters. Memory, the halt address and
// breakpoints are retained.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.A = 0
	cpu.D = 0
	cpu.Speed = 0
	cpu.Ticks = 0
}

// Registers returns the PC, A and D registers.
func (cpu *Cpu) Registers() (pc, a, d uint16) {
	return cpu.Pc, cpu.A, cpu.D
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "d", "halt", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04x %v", cpu.Pc, cpu.disassembleAt(cpu.Pc))
		case "a":
			strval = fmt.Sprintf("%04x %6d", cpu.A, int16(cpu.A))
		case "d":
			strval = fmt.Sprintf("%04x %6d", cpu.D, int16(cpu.D))
		case "halt":
			if cpu.HaltAddr == 0 {
				strval = "----"
			} else {
				strval = fmt.Sprintf("%04x", cpu.HaltAddr)
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

func (cpu *Cpu) disassembleAt(address uint16) string {
	if address >= MEMORY_SIZE {
		return "????"
	}
	return Code(cpu.Rom[address]).String()
}

// Step executes the single instruction at PC, ignoring breakpoints.
//
// STOP_SYS_HALT is returned, without executing anything, when PC is one
// past the halt address. STOP_HARD_LOOP is returned after a jump to the
// instruction before the jump, which is how programs park themselves.
// On error the PC is left at the faulting instruction.
func (cpu *Cpu) Step() (stop StopReason, err error) {
	pc := cpu.Pc
	if pc >= MEMORY_SIZE {
		err = ErrPc(pc)
		return
	}

	if cpu.HaltAddr != 0 && pc == cpu.HaltAddr+1 {
		stop = STOP_SYS_HALT
		return
	}

	code := Code(cpu.Rom[pc])
	if cpu.Verbose {
		log.Printf("cpu: %04x: %04x %v A=%04x D=%04x", pc, code.Word(), code, cpu.A, cpu.D)
	}

	cpu.Ticks++
	cpu.Pc = pc + 1

	stop, err = cpu.Execute(pc, code)
	if err != nil {
		cpu.Pc = pc
	}

	return
}

// Execute executes a single decoded instruction fetched from address pc.
// PC must already point to the next instruction.
func (cpu *Cpu) Execute(pc uint16, code Code) (stop StopReason, err error) {
	if code.Class() == OP_ADDRESS {
		cpu.A = code.Word()
		return
	}

	if !code.Valid() {
		err = &ErrOpcode{Pc: pc, Code: code}
		return
	}

	a := cpu.A

	y := a
	if code.Memory() {
		y, err = cpu.Read(a)
		if err != nil {
			return
		}
	}

	out := Alu(cpu.D, y, code.Comp())

	dest := code.Dest()
	if dest&DEST_M != 0 {
		err = cpu.Write(a, out)
		if err != nil {
			return
		}
	}
	if dest&DEST_D != 0 {
		cpu.D = out
	}
	if dest&DEST_A != 0 {
		cpu.A = out
	}

	if code.Jump().Taken(out) {
		cpu.Pc = a
		// (HALT) @HALT 0;JMP
		if pc > 0 && cpu.Pc == pc-1 {
			stop = STOP_HARD_LOOP
		}
	}

	return
}

// ExecuteInstructions runs the program until the time budget is used, an
// enabled breakpoint is reached, or the program halts or hard loops.
//
// The budget is only checked every CHECKPOINT_INTERVAL instructions; when it
// is exceeded Speed is updated and STOP_BUDGET is returned, and the caller
// should call again to continue. A zero budget executes exactly one
// instruction, regardless of breakpoints.
//
// A breakpoint stops the run before its instruction executes.
func (cpu *Cpu) ExecuteInstructions(budget time.Duration) (stop StopReason, err error) {
	if budget <= 0 {
		stop, err = cpu.Step()
		if err == nil && stop == STOP_NONE {
			stop = STOP_BUDGET
		}
		return
	}

	start := time.Now()
	ticks := cpu.Ticks
	cpu.Speed = 0

	var counter int
	for {
		if cpu.Pc >= MEMORY_SIZE {
			err = ErrPc(cpu.Pc)
			return
		}

		if cpu.breakpointAt(cpu.Pc) {
			if cpu.Verbose {
				log.Printf("cpu: breakpoint at %04x", cpu.Pc)
			}
			stop = STOP_BREAKPOINT
			return
		}

		counter++
		if counter >= CHECKPOINT_INTERVAL {
			counter = 0
			elapsed := time.Since(start)
			if elapsed > budget {
				cpu.Speed = float64(cpu.Ticks-ticks) / elapsed.Seconds() / 1e6
				stop = STOP_BUDGET
				return
			}
		}

		stop, err = cpu.Step()
		if err != nil || stop != STOP_NONE {
			return
		}
	}
}
