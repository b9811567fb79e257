package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faanross/simulacra_png/internal/chunker"
	"github.com/faanross/simulacra_png/internal/decoder"
	"github.com/faanross/simulacra_png/internal/encoder"
	"github.com/faanross/simulacra_png/internal/frame"
	"github.com/faanross/simulacra_png/internal/layout"
	"github.com/faanross/simulacra_png/internal/status"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file-or-dir>",
	Short: "Show how a file would be split, or what a directory of images holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			return inspectDir(args[0])
		}
		inspectFile(args[0], info.Size())
		return nil
	},
}

var inspectFormat string

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", encoder.DEFAULT_FORMAT, "image format used for planned names")
}

func inspectFile(path string, size int64) {
	s := layout.SelectStrategy(size)
	width := layout.IDWidth(s.ChunkCount)
	base := filepath.Base(path)

	fmt.Printf("\n📊 Disguise plan for %s:\n", path)
	fmt.Printf("   %s\n", chunker.Describe(size, s))
	fmt.Printf("   Id width: %d\n", width)
	fmt.Printf("   Names: %s ... %s\n",
		frame.Name(base, 0, width, inspectFormat),
		frame.Name(base, s.ChunkCount-1, width, inspectFormat))
}

func inspectDir(dir string) error {
	infos, err := decoder.NewCollector(pool).Inspect(dir)
	if err != nil {
		return err
	}

	fmt.Printf("\n📷 %d images in %s:\n", len(infos), dir)
	var total uint64
	bad := 0
	for _, fi := range infos {
		if fi.Err != nil {
			bad++
			fmt.Printf("   %6d  %-40s  ❌ %v\n", fi.Entry.ID, filepath.Base(fi.Entry.Path), fi.Err)
			continue
		}
		total += fi.Stored
		fmt.Printf("   %6d  %-40s  %d/%d bytes\n", fi.Entry.ID, filepath.Base(fi.Entry.Path), fi.Stored, fi.Capacity)
	}

	if missing := chunker.FindMissing(entriesOf(infos)); len(missing) > 0 {
		fmt.Printf("\n   ⚠️  Missing ids: %v\n", missing)
	}
	if bad > 0 {
		fmt.Printf("\n   ❌ %d unreadable images, recovery would fail\n", bad)
		return status.Errorf(status.DataErr, "inspect", dir, "%d of %d images unreadable", bad, len(infos))
	}
	fmt.Printf("\n   ✅ Recoverable payload: %d bytes\n", total)
	return nil
}

func entriesOf(infos []decoder.FrameInfo) []chunker.Entry {
	out := make([]chunker.Entry, len(infos))
	for i, fi := range infos {
		out[i] = fi.Entry
	}
	return out
}
