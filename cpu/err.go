package cpu

import (
	"errors"

	"github.com/ezrec/simp/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrMemoryMissing   = errors.New(f("memory not attached"))
	ErrPortsMissing    = errors.New(f("ports not attached"))

	// Assembler errors
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOpcodeUnknown    = errors.New(f("opcode unknown"))
	ErrRegisterUnknown  = errors.New(f("register unknown"))
	ErrFieldMissing     = errors.New(f("field missing"))
	ErrAddressRange     = errors.New(f("data address out of range"))
	ErrInstructionRange = errors.New(f("too many instructions"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrDecodeShort string

func (ed ErrDecodeShort) Error() string {
	return f("instruction '%v' shorter than %d digits", string(ed), WORD_DIGITS)
}

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v (%v)", Code(eo).Word(), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
