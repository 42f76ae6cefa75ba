package instructionSet

// Operation identifies what an instruction does, independent of how it
// addresses its operand.
type Operation uint8

const (
	UND Operation = iota // undefined opcode, a charged no-op
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Operations is the number of defined operations.
	Operations
)

var operationNames = [Operations]string{
	"???", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP",
	"ROL", "ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX",
	"STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (o Operation) String() string {
	if o < Operations {
		return operationNames[o]
	}
	return "???"
}

func (o Operation) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// IsBranch reports whether the operation is a conditional relative branch.
func (o Operation) IsBranch() bool {
	switch o {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}
