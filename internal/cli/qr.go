package cli

import (
	"fmt"
	"os"

	"github.com/rpgo/calckit/internal/qrscan"
	"github.com/spf13/cobra"
)

var extractOpts = qrscan.DefaultExtractOptions()

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Scan QR codes and pull links, emails and phone numbers out of text",
}

var qrScanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Decode a QR code from a PNG, JPEG or GIF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runQRScan,
}

var qrExtractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract URLs, emails and phone numbers from text",
	RunE:  runQRExtract,
}

func init() {
	for _, c := range []*cobra.Command{qrScanCmd, qrExtractCmd} {
		c.Flags().BoolVar(&extractOpts.ExtractURLs, "urls", true, "Extract URLs")
		c.Flags().BoolVar(&extractOpts.ExtractEmails, "emails", true, "Extract email addresses")
		c.Flags().BoolVar(&extractOpts.AutoDetectPhone, "phones", true, "Detect phone numbers")
		c.Flags().BoolVar(&extractOpts.FormatText, "format-text", true, "Collapse runs of whitespace")
		c.Flags().BoolVar(&extractOpts.RemoveEmptyLines, "remove-empty-lines", true, "Drop blank lines")
		c.Flags().BoolVar(&extractOpts.PreserveCase, "preserve-case", false, "Keep the original letter case")
	}
	qrCmd.AddCommand(qrScanCmd, qrExtractCmd)
	rootCmd.AddCommand(qrCmd)
}

func runQRScan(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", args[0], err)
	}
	defer f.Close()

	text, err := qrscan.NewImageScanner().Scan(cmd.Context(), f)
	if err != nil {
		return err
	}
	logger.Debug("qr decoded")
	printItems(cmd, text, qrscan.Extract(text, extractOpts))
	return nil
}

func runQRExtract(cmd *cobra.Command, args []string) error {
	text, err := argOrStdin(cmd, args)
	if err != nil {
		return err
	}
	printItems(cmd, "", qrscan.Extract(text, extractOpts))
	return nil
}

func printItems(cmd *cobra.Command, raw string, items []string) {
	w := cmd.OutOrStdout()
	if raw != "" {
		fmt.Fprintf(w, "Decoded: %s\n", raw)
	}
	for _, it := range items {
		fmt.Fprintln(w, it)
	}
}
