package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/faanross/simulacra_png/internal/encoder"
)

var disguiseFormat string

var disguiseCmd = &cobra.Command{
	Use:   "disguise <input-file> <output-dir>",
	Short: "Split a file into images",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, outputDir := args[0], args[1]

		d, err := encoder.NewDisguiser(pool, encoder.Config{Format: disguiseFormat})
		if err != nil {
			return err
		}

		banner("🖼️  File Camouflage")
		start := time.Now()
		res, err := d.Disguise(inputFile, outputDir)
		if err != nil {
			return err
		}

		fmt.Printf("\n📄 Input file: %s (%d bytes)\n", inputFile, res.FileSize)
		printDigest(inputFile)
		fmt.Printf("\n📊 Strategy:\n")
		fmt.Printf("   Tier: %s (%dx%d)\n", res.Strategy.Tier.Name, res.Strategy.Tier.Width, res.Strategy.Tier.Height)
		fmt.Printf("   Payload per image: %d bytes\n", res.Strategy.Tier.Usable)
		fmt.Printf("   Images: %d\n", res.Strategy.ChunkCount)
		fmt.Printf("   Workers: %d\n", pool.Size())

		fmt.Printf("\n✅ Disguise complete in %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("   First: %s\n", filepath.Base(res.Files[0]))
		fmt.Printf("   Last:  %s\n", filepath.Base(res.Files[len(res.Files)-1]))
		fmt.Printf("\n🔓 To recover: camo recover %s <output-file>\n", outputDir)
		return nil
	},
}

func init() {
	disguiseCmd.Flags().StringVar(&disguiseFormat, "format", encoder.DEFAULT_FORMAT, "image format: png or bmp")
}
