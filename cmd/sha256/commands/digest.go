package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/crypto"
	"github.com/spf13/cobra"
)

var (
	digestHex  bool
	digestFile string
)

// NewDigestCmd produces a DigestCmd which prints the SHA-256 digest of its
// input
func NewDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [text...]",
		Short: "Print the SHA-256 digest of text, hex bytes or a file",
		Long: `Print the SHA-256 digest of the arguments, joined with spaces and
encoded as UTF-8. Empty or whitespace-only text hashes like the empty string.
With --hex the arguments are decoded as hex bytes instead. With --file the
content of the file is hashed; use "-" to read standard input.`,
		RunE: digest,
	}

	AddDigestFlags(cmd)

	return cmd
}

// AddDigestFlags adds flags to the digest command
func AddDigestFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&digestHex, "hex", false, "Decode the arguments as hex bytes")
	cmd.Flags().StringVar(&digestFile, "file", "", "Hash the content of a file (- for stdin)")
}

func digest(cmd *cobra.Command, args []string) error {
	var d common.Hash32

	switch {
	case digestFile != "":
		data, err := readInput(digestFile)
		if err != nil {
			return fmt.Errorf("Reading %s: %s", digestFile, err)
		}
		d = crypto.Compute(data)
	case digestHex:
		data, err := common.DecodeFromString(strings.Join(args, ""))
		if err != nil {
			return err
		}
		d = crypto.Compute(data)
	default:
		d = crypto.ComputeString(strings.Join(args, " "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), d.Hex())

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}
