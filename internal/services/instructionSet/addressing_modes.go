package instructionSet

// AddrMode identifies how an instruction locates its operand.
//
// The 6502 can address between 0x0000 - 0xFFFF. The high byte is often referred
// to as the "page", and the low byte is the offset into that page. This implies
// there are 256 pages, each containing 256 bytes.
//
// Several addressing modes have the potential to require an additional clock
// cycle if they cross a page boundary. This is combined with several instructions
// that enable this additional clock cycle. The resolver reports the crossing and
// each opcode says whether it pays for it.
type AddrMode uint8

const (
	// IMP Address Mode: Implied
	// There is no additional data required for this instruction. The instruction
	// does something very simple like sets a status bit.
	IMP AddrMode = iota

	// IMM Address Mode: Immediate
	// The instruction expects the next byte to be used as a value, so the
	// operand address points at the next byte.
	IMM

	// ZPG Address Mode: Zero Page
	// To save program bytes, zero page addressing allows you to absolutely address
	// a location in first 0xFF bytes of address range. Clearly this only requires
	// one byte instead of the usual two.
	ZPG

	// ZPX Address Mode: Zero Page with X/Y Offset
	// Fundamentally the same as zero page addressing, but the contents of the X
	// or Y register is added to the supplied single byte address. The sum wraps
	// within page zero: if X holds $FF then LDA $80,X reads $7F, not $017F.
	ZPX
	ZPY

	// ABS Address Mode: Absolute
	// A full 16-bit address is loaded and used
	ABS

	// ABX Address Mode: Absolute with X/Y Offset
	// Fundamentally the same as absolute addressing, but the contents of the X or Y
	// register is added to the supplied two byte address. If the resulting address
	// changes the page, an additional clock cycle may be required
	ABX
	ABY

	// IZX Address Mode: Indexed Indirect
	// The supplied 8-bit address is offset by X (wrapping in page zero) and the
	// actual 16-bit address is read from there.
	IZX

	// IZY Address Mode: Indirect Indexed
	// The supplied 8-bit address indexes a location in page 0x00. From
	// here the actual 16-bit address is read, and the contents of
	// Y Register is added to it to offset it. If the offset causes a
	// change in page then an additional clock cycle may be required.
	IZY

	// ACC Address Mode: Accumulator
	// Operates on the Accumulator and not any address
	ACC

	// REL Address Mode: Relative
	// This address mode is exclusive to branch instructions. The address
	// must reside within -128 to +127 of the instruction following the branch.
	REL

	// IND Address Mode: Indirect
	// The supplied 16-bit address is read to get the actual 16-bit address. This
	// instruction is unusual in that it has a bug in the hardware! If the low byte
	// of the supplied address is 0xFF, then to read the high byte of the actual
	// address we need to cross a page boundary. This doesnt actually work on the
	// chip as designed, instead it wraps back around in the same page.
	IND
)

var addressModeNames = [...]string{"IMP", "IMM", "ZPG", "ZPX", "ZPY", "ABS", "ABX", "ABY", "IZX", "IZY", "ACC", "REL", "IND"}

// operandBytes is the number of bytes following the opcode for each mode.
var operandBytes = [...]int{0, 1, 1, 1, 1, 2, 2, 2, 1, 1, 0, 1, 2}

func (m AddrMode) String() string {
	if int(m) < len(addressModeNames) {
		return addressModeNames[m]
	}
	return "???"
}

// OperandBytes returns the number of operand bytes the mode consumes.
func (m AddrMode) OperandBytes() int {
	if int(m) < len(operandBytes) {
		return operandBytes[m]
	}
	return 0
}

func (m AddrMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
