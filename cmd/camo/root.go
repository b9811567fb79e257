package main

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/faanross/simulacra_png/internal/workers"
)

var (
	workerCount int
	pool        *workers.Pool
)

var rootCmd = &cobra.Command{
	Use:   "camo",
	Short: "Hide any file inside a sequence of lossless images",
	Long: `camo splits a file into fixed-size chunks and stores each one verbatim in
the pixels of a PNG (or BMP) image. The images can later be turned back into
the original file, byte for byte.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog reads its settings from the Go flag set, already filled in by cobra.
		_ = flag.CommandLine.Parse(nil)
		pool = workers.New(workerCount)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&workerCount, "workers", 0, "images processed in parallel (0 = one per CPU)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(disguiseCmd, recoverCmd, inspectCmd)
}
