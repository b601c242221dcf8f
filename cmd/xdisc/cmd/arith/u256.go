package arith

import (
	"fmt"
	"strconv"
	"strings"

	"xdisc/uint256"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const HexFlag = "hex"

var printHex bool

type operation struct {
	arity int
	eval  func(args []uint256.UInt256) (fmt.Stringer, error)
}

func binary(fn func(a, b uint256.UInt256) uint256.UInt256) operation {
	return operation{2, func(args []uint256.UInt256) (fmt.Stringer, error) {
		return fn(args[0], args[1]), nil
	}}
}

func binaryErr(fn func(a, b uint256.UInt256) (uint256.UInt256, error)) operation {
	return operation{2, func(args []uint256.UInt256) (fmt.Stringer, error) {
		v, err := fn(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return v, nil
	}}
}

func ternaryErr(fn func(a, b, m uint256.UInt256) (uint256.UInt256, error)) operation {
	return operation{3, func(args []uint256.UInt256) (fmt.Stringer, error) {
		v, err := fn(args[0], args[1], args[2])
		if err != nil {
			return nil, err
		}
		return v, nil
	}}
}

type cmpResult int

func (c cmpResult) String() string {
	return strconv.Itoa(int(c))
}

var operations = map[string]operation{
	"add": binary(uint256.UInt256.Add),
	"sub": binary(uint256.UInt256.Sub),
	"mul": binary(uint256.UInt256.Mul),
	"pow": binary(uint256.UInt256.Pow),
	"and": binary(uint256.UInt256.And),
	"or":  binary(uint256.UInt256.Or),
	"xor": binary(uint256.UInt256.Xor),
	"div": binaryErr(uint256.UInt256.Div),
	"mod": binaryErr(uint256.UInt256.Mod),
	"not": {1, func(args []uint256.UInt256) (fmt.Stringer, error) {
		return args[0].Not(), nil
	}},
	"addmod": ternaryErr(uint256.UInt256.AddMod),
	"mulmod": ternaryErr(uint256.UInt256.MulMod),
	"signextend": {2, func(args []uint256.UInt256) (fmt.Stringer, error) {
		return args[1].SignExtend(args[0]), nil
	}},
	"cmp": {2, func(args []uint256.UInt256) (fmt.Stringer, error) {
		return cmpResult(args[0].Cmp(args[1])), nil
	}},
}

// Eval applies op to the decimal or 0x-prefixed hex operands in args.
// signextend takes the byte index first, as in the EVM.
func Eval(name string, args []string) (fmt.Stringer, error) {
	op, ok := operations[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown operation %q", name)
	}
	if len(args) != op.arity {
		return nil, errors.Errorf("%s takes %d operand(s), got %d", name, op.arity, len(args))
	}
	operands := make([]uint256.UInt256, len(args))
	for i, arg := range args {
		v, err := uint256.Parse[uint256.Plain](arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid operand %q", arg)
		}
		operands[i] = v
	}
	return op.eval(operands)
}

type hexer interface {
	Hex() string
}

var u256Cmd = &cobra.Command{
	Use:   "u256 <op> <operand>...",
	Short: "Evaluates 256-bit arithmetic: add, sub, mul, div, mod, pow, and, or, xor, not, addmod, mulmod, signextend, cmp.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := Eval(args[0], args[1:])
		if err != nil {
			return err
		}
		if h, ok := res.(hexer); ok && printHex {
			fmt.Println(h.Hex())
			return nil
		}
		fmt.Println(res.String())
		return nil
	},
}

func AddCmd(parent *cobra.Command) {
	u256Cmd.Flags().BoolVar(&printHex, HexFlag, false, "Print the result as 32-byte hex")
	parent.AddCommand(u256Cmd)
}
