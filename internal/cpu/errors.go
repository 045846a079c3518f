package cpu

import "fmt"

// DecodeError reports an opcode this core does not implement: a
// reserved/removed SM83 slot, or STOP when Config.Stop is StopFatal.
type DecodeError struct {
	PC     uint16
	Opcode byte
	CB     bool
}

func (e *DecodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("cpu: unimplemented CB opcode %#02x at pc=%#04x", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode %#02x at pc=%#04x", e.Opcode, e.PC)
}
