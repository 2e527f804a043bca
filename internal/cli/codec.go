package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/calckit/internal/textcodec"
	"github.com/spf13/cobra"
)

var (
	codecTo        string
	codecFrom      string
	codecEncoding  string
	codecLayout    string
	codecSeparator string
	codecLower     bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Convert text to hex, binary or decimal",
	Long:  "Convert text to hex, binary or decimal. Reads stdin when no text is given.",
	Example: `  calckit encode "Hi!"
  calckit encode --to hex --layout prefixed --separator comma "Hi!"`,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:     "decode [input]",
	Short:   "Convert hex, binary or decimal back to text",
	Example: `  calckit decode --from hex "48 69 21"`,
	RunE:    runDecode,
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringVar(&codecEncoding, "encoding", string(textcodec.UTF8), "Text encoding: utf8 or ascii")
		c.Flags().StringVar(&codecLayout, "layout", string(textcodec.Spaced), "Hex layout: spaced, compact or prefixed")
		c.Flags().StringVar(&codecSeparator, "separator", string(textcodec.Space), "Separator: space, comma or newline")
	}
	encodeCmd.Flags().StringVar(&codecTo, "to", "all", "Target: hex, binary, decimal or all")
	encodeCmd.Flags().BoolVar(&codecLower, "lower", false, "Lowercase hex digits")
	decodeCmd.Flags().StringVar(&codecFrom, "from", "hex", "Source: hex, binary or decimal")

	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

func codecOptions() (textcodec.Options, error) {
	opts := textcodec.Options{
		Encoding:  textcodec.Encoding(codecEncoding),
		Layout:    textcodec.Layout(codecLayout),
		Separator: textcodec.Separator(codecSeparator),
		Lowercase: codecLower,
	}
	return opts, opts.Validate()
}

// argOrStdin joins args, or reads all of stdin when there are none.
func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	opts, err := codecOptions()
	if err != nil {
		return err
	}
	text, err := argOrStdin(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch codecTo {
	case "hex":
		fmt.Fprintln(w, textcodec.EncodeHex(text, opts))
	case "binary":
		fmt.Fprintln(w, textcodec.EncodeBinary(text, opts))
	case "decimal":
		fmt.Fprintln(w, textcodec.EncodeDecimal(text, opts))
	case "all":
		c := textcodec.Convert(text, opts)
		rows := [][]string{
			{"Hex", c.Hex},
			{"Binary", c.Binary},
			{"Decimal", c.Decimal},
			{"Characters", fmt.Sprint(c.CharCount)},
			{"Bytes", fmt.Sprint(c.ByteCount)},
		}
		fmt.Fprint(w, renderTable(cmd, "", []string{"Format", "Value"}, rows))
	default:
		return fmt.Errorf("unknown target %q (want hex, binary, decimal or all)", codecTo)
	}
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	opts, err := codecOptions()
	if err != nil {
		return err
	}
	input, err := argOrStdin(cmd, args)
	if err != nil {
		return err
	}

	var text string
	switch codecFrom {
	case "hex":
		text, _, err = textcodec.DecodeHex(input, opts.Layout, opts.Encoding)
	case "binary":
		text, err = textcodec.DecodeBinary(input, opts.Encoding)
	case "decimal":
		text, err = textcodec.DecodeDecimal(input, opts.Separator, opts.Encoding)
	default:
		return fmt.Errorf("unknown source %q (want hex, binary or decimal)", codecFrom)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
