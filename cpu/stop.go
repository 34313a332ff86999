package cpu

// StopReason is why a bounded run returned without an error.
type StopReason int

const (
	STOP_NONE       = StopReason(0) // none
	STOP_BUDGET     = StopReason(1) // budget
	STOP_SYS_HALT   = StopReason(2) // halt
	STOP_HARD_LOOP  = StopReason(3) // loop
	STOP_BREAKPOINT = StopReason(4) // breakpoint
)

var stopName = map[StopReason]string{
	STOP_NONE:       "none",
	STOP_BUDGET:     "budget",
	STOP_SYS_HALT:   "halt",
	STOP_HARD_LOOP:  "loop",
	STOP_BREAKPOINT: "breakpoint",
}

func (stop StopReason) String() string {
	name, ok := stopName[stop]
	if !ok {
		return f("StopReason(%d)", int(stop))
	}
	return name
}

// Done returns true if the program can not make progress by running again.
func (stop StopReason) Done() bool {
	return stop == STOP_SYS_HALT || stop == STOP_HARD_LOOP
}
