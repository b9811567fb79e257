package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faanross/simulacra_png/internal/decoder"
)

var recoverCmd = &cobra.Command{
	Use:   "recover <input-dir> <output-file>",
	Short: "Rebuild a file from its images",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir, outputFile := args[0], args[1]

		banner("🔍 File Recovery")
		start := time.Now()
		res, err := decoder.NewCollector(pool).Recover(inputDir, outputFile)
		if err != nil {
			return err
		}

		fmt.Printf("\n📦 Images read: %d\n", len(res.Entries))
		fmt.Printf("\n✅ Recovery complete in %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("   Output: %s (%d bytes)\n", outputFile, res.Bytes)
		printDigest(outputFile)
		return nil
	},
}
