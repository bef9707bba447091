package commands

import (
	"fmt"

	"github.com/mosaicnetworks/digest/src/crypto"
	"github.com/spf13/cobra"
)

// NewConstantsCmd produces a ConstantsCmd which prints the cached digests
func NewConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the well-known digests",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "EmptyStringDigest      %s\n", crypto.EmptyStringDigest.Hex())
			fmt.Fprintf(out, "EmptyRlpSequenceDigest %s\n", crypto.EmptyRlpSequenceDigest.Hex())
			fmt.Fprintf(out, "EmptyTreeDigest        %s\n", crypto.EmptyTreeDigest.Hex())
			fmt.Fprintf(out, "Zero                   %s\n", crypto.Zero.Hex())
		},
	}
}
