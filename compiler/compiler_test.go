package compiler_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfvm/compiler"
	"github.com/sarchlab/bfvm/program"
	"github.com/sarchlab/bfvm/verify"
)

func expectParseError(err error, sentinel error, offset int) {
	var perr *compiler.ParseError
	ExpectWithOffset(1, errors.As(err, &perr)).To(BeTrue())
	ExpectWithOffset(1, perr.Err).To(MatchError(sentinel))
	ExpectWithOffset(1, perr.Offset).To(Equal(offset))
}

var _ = Describe("Compiler", func() {
	Context("Plain instructions", func() {
		It("should compile +>+< in order", func() {
			prog, err := compiler.Compile("+>+<")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Opcodes()).To(Equal([]program.Opcode{
				program.Increment, program.MoveRight,
				program.Increment, program.MoveLeft,
			}))
			for _, inst := range prog.Insts {
				Expect(inst.OpCode.IsJump()).To(BeFalse())
			}
		})

		It("should map every instruction character", func() {
			prog, err := compiler.Compile("><+-.,")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Opcodes()).To(Equal([]program.Opcode{
				program.MoveRight, program.MoveLeft, program.Increment,
				program.Decrement, program.Output, program.Input,
			}))
		})

		It("should discard comments and whitespace", func() {
			prog, err := compiler.Compile("add two: + +\n\tthen print .")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Source(program.DefaultISA())).To(Equal("++."))
		})

		It("should record source offsets", func() {
			prog, err := compiler.Compile("a+ b-")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Insts[0].Offset).To(Equal(1))
			Expect(prog.Insts[1].Offset).To(Equal(4))
		})

		It("should count offsets in runes", func() {
			prog, err := compiler.Compile("é+")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Insts[0].Offset).To(Equal(1))
		})
	})

	Context("Jumps", func() {
		It("should pair brackets in both directions", func() {
			prog, err := compiler.Compile("++[-].")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Insts[2]).To(Equal(program.NewJump(program.JumpForward, 4, 2)))
			Expect(prog.Insts[4]).To(Equal(program.NewJump(program.JumpBackward, 2, 4)))
		})

		It("should pair nested brackets", func() {
			prog, err := compiler.Compile("[[][]]")
			Expect(err).NotTo(HaveOccurred())

			targets := make([]int, prog.Len())
			for i, inst := range prog.Insts {
				targets[i] = inst.Target
			}
			Expect(targets).To(Equal([]int{5, 2, 1, 4, 3, 0}))
			Expect(verify.RunLint(prog)).To(BeEmpty())
		})

		It("should validate balanced programs", func() {
			sources := []string{
				"[]", "+[>+<-]", "[[[[]]]]", "+[-[+]-]", ">[<[>]]<",
				"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]",
			}
			for _, src := range sources {
				prog, err := compiler.Compile(src)
				Expect(err).NotTo(HaveOccurred(), src)
				Expect(verify.Validate(prog)).To(BeTrue(), src)
				Expect(verify.RunLint(prog)).To(BeEmpty(), src)
			}
		})
	})

	Context("Errors", func() {
		It("should reject source with no instructions", func() {
			for _, src := range []string{"", "hello world", " \n\t", "{}()#"} {
				_, err := compiler.Compile(src)
				Expect(err).To(MatchError(compiler.ErrNoInstructions), src)
				expectParseError(err, compiler.ErrNoInstructions, -1)
			}
		})

		It("should reject an unmatched closing bracket", func() {
			_, err := compiler.Compile("]")
			expectParseError(err, compiler.ErrUnmatchedClose, 0)

			_, err = compiler.Compile("+]")
			expectParseError(err, compiler.ErrUnmatchedClose, 1)

			_, err = compiler.Compile("[]]")
			expectParseError(err, compiler.ErrUnmatchedClose, 2)
		})

		It("should reject an unmatched opening bracket", func() {
			_, err := compiler.Compile("[")
			expectParseError(err, compiler.ErrUnmatchedOpen, 0)

			_, err = compiler.Compile("[+[-] x")
			expectParseError(err, compiler.ErrUnmatchedOpen, 0)

			_, err = compiler.Compile("+[[]")
			expectParseError(err, compiler.ErrUnmatchedOpen, 1)
		})

		It("should describe the failure", func() {
			_, err := compiler.Compile("+]")
			Expect(err.Error()).To(Equal("parse error: unmatched ']' at offset 1"))

			_, err = compiler.Compile("")
			Expect(err.Error()).To(Equal("parse error: no instructions"))
		})
	})

	Context("Custom ISA", func() {
		It("should only accept the characters of the injected ISA", func() {
			isa := program.NewISA("tiny")
			isa.RegisterInst('i', program.Increment)
			isa.RegisterInst('o', program.Output)

			prog, err := compiler.New(isa).Compile("ii+o")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Opcodes()).To(Equal([]program.Opcode{
				program.Increment, program.Increment, program.Output,
			}))

			_, err = compiler.New(isa).Compile("+++")
			Expect(err).To(MatchError(compiler.ErrNoInstructions))
		})

		It("should panic without an ISA", func() {
			Expect(func() { compiler.New(nil) }).To(Panic())
		})
	})

	It("should compile deterministically", func() {
		src := strings.Repeat("+[>,.<-]", 20)
		first, err := compiler.Compile(src)
		Expect(err).NotTo(HaveOccurred())
		second, err := compiler.Compile(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})
})
