package codec

import "github.com/spf13/cobra"

var cmd = &cobra.Command{
	Use:   "rlp",
	Short: "Commands for encoding and inspecting raw RLP.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
