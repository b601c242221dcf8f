package codec

import (
	"fmt"

	"xdisc/bytesval"
	"xdisc/rlp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeStringCmd = &cobra.Command{
	Use:   "encode-string <hex>",
	Short: "Encodes the given bytes as an RLP string.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := bytesval.FromHex(args[0])
		if err != nil {
			return err
		}
		dest := bytesval.NewMutable(rlp.ElementSize(value))
		if _, err := rlp.WriteElement(value, dest, 0); err != nil {
			return err
		}
		fmt.Println(dest.Freeze().Hex())
		return nil
	},
}

var encodeListCmd = &cobra.Command{
	Use:   "encode-list <hex>...",
	Short: "Encodes the given byte strings as a flat RLP list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]rlp.Item, 0, len(args))
		for _, arg := range args {
			value, err := bytesval.FromHex(arg)
			if err != nil {
				return errors.Wrapf(err, "invalid list element %q", arg)
			}
			items = append(items, rlp.NewString(value.ToSlice()))
		}
		fmt.Printf("%x\n", rlp.Encode(rlp.NewList(items...)))
		return nil
	},
}

func init() {
	cmd.AddCommand(encodeStringCmd)
	cmd.AddCommand(encodeListCmd)
}
