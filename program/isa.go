package program

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from source character to the opcode it compiles to.
	charToOpcode map[rune]Opcode
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		charToOpcode: make(map[rune]Opcode),
	}
}

// RegisterInst binds a source character to an opcode.
func (isa *ISA) RegisterInst(char rune, op Opcode) {
	if !op.Valid() {
		panic("cannot register invalid opcode for " + string(char))
	}
	isa.charToOpcode[char] = op
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Lookup returns the opcode of a character, and whether the character
// belongs to the ISA at all.
func (isa *ISA) Lookup(char rune) (Opcode, bool) {
	op, ok := isa.charToOpcode[char]
	return op, ok
}

// Char returns the source character that compiles to op.
func (isa *ISA) Char(op Opcode) (rune, bool) {
	for c, o := range isa.charToOpcode {
		if o == op {
			return c, true
		}
	}
	return 0, false
}

// DefaultISA returns the eight-character brainfuck ISA.
func DefaultISA() *ISA {
	isa := NewISA("brainfuck")
	isa.RegisterInst('>', MoveRight)
	isa.RegisterInst('<', MoveLeft)
	isa.RegisterInst('+', Increment)
	isa.RegisterInst('-', Decrement)
	isa.RegisterInst('.', Output)
	isa.RegisterInst(',', Input)
	isa.RegisterInst('[', JumpForward)
	isa.RegisterInst(']', JumpBackward)
	return isa
}
