package codec

import (
	"fmt"

	"xdisc/cli"
	"xdisc/rlp"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

const VerboseFlag = "verbose"

var verbose bool

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decodes a single RLP item and prints its tree. Reads stdin when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cli.ReadHexArg(args, 0)
		if err != nil {
			return err
		}
		item, err := rlp.Decode(data.ToSlice(), cli.DecodeOptionsFor(cmd)...)
		if err != nil {
			return err
		}
		if verbose {
			spew.Dump(item)
			return nil
		}
		fmt.Println(item.String())
		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&verbose, VerboseFlag, false, "Dump the full item structure")
	decodeCmd.Flags().Bool(cli.FlagLenient, false, "Accept non-canonical RLP")
	cmd.AddCommand(decodeCmd)
}
