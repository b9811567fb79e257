package encoder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/faanross/simulacra_png/internal/chunker"
	"github.com/faanross/simulacra_png/internal/frame"
	"github.com/faanross/simulacra_png/internal/imaging"
	"github.com/faanross/simulacra_png/internal/layout"
	"github.com/faanross/simulacra_png/internal/status"
	"github.com/faanross/simulacra_png/internal/workers"
)

const DEFAULT_FORMAT = "png"

// Config allows customization of disguise output
type Config struct {
	Format string        // Image extension, "png" or "bmp"
	Codec  imaging.Codec // Overrides Format when set
}

// chunkSource is the per-task handle a chunk is read through
type chunkSource interface {
	io.ReaderAt
	io.Closer
}

// Disguiser turns a file into a directory of images
type Disguiser struct {
	pool  *workers.Pool
	codec imaging.Codec
	open  func(path string) (chunkSource, error)
}

// Result describes the images a Disguise call produced
type Result struct {
	FileSize int64
	Strategy layout.Strategy
	Files    []string // Output paths, in chunk order
}

// NewDisguiser creates a disguiser that runs its chunks on pool
func NewDisguiser(pool *workers.Pool, config Config) (*Disguiser, error) {
	if pool == nil {
		return nil, errors.New("nil worker pool")
	}

	codec := config.Codec
	if codec == nil {
		if config.Format == "" {
			config.Format = DEFAULT_FORMAT
		}
		c, ok := imaging.ForExt(config.Format)
		if !ok {
			return nil, fmt.Errorf("unsupported image format %q (have %v)", config.Format, imaging.Formats())
		}
		codec = c
	}

	return &Disguiser{pool: pool, codec: codec, open: openFile}, nil
}

func openFile(path string) (chunkSource, error) {
	return os.Open(path)
}

// Disguise splits inputPath into images written to outputDir.
//
// Preconditions are checked before any work is submitted. Once chunks are
// running every one of them is allowed to finish; the failure of the lowest
// chunk index is returned. Images from chunks that succeeded stay on disk.
func (d *Disguiser) Disguise(inputPath, outputDir string) (*Result, error) {
	info, err := checkInput(inputPath)
	if err != nil {
		return nil, err
	}
	if err := prepareOutputDir(outputDir); err != nil {
		return nil, err
	}

	op := uuid.NewString()[:8]
	fileSize := info.Size()
	strategy := layout.SelectStrategy(fileSize)
	chunks := chunker.Plan(fileSize, strategy)
	width := layout.IDWidth(strategy.ChunkCount)
	base := filepath.Base(inputPath)

	glog.Infof("[%s] disguise %s: %s", op, inputPath, chunker.Describe(fileSize, strategy))

	result := &Result{
		FileSize: fileSize,
		Strategy: strategy,
		Files:    make([]string, len(chunks)),
	}

	batch := d.pool.NewBatch()
	futures := make([]*workers.Future[struct{}], len(chunks))
	for i, c := range chunks {
		outPath := filepath.Join(outputDir, frame.Name(base, c.Index, width, d.codec.Ext()))
		result.Files[i] = outPath

		futures[i] = workers.Submit(batch, func() (struct{}, error) {
			return struct{}{}, d.writeChunk(inputPath, outPath, c, strategy.Tier)
		})
	}
	if err := batch.Wait(); err != nil {
		// Report the lowest failing chunk, not whichever failed first.
		for i, f := range futures {
			if _, err := f.Wait(); err != nil {
				glog.Errorf("[%s] chunk %d failed: %v", op, i, err)
				return nil, err
			}
		}
	}

	glog.Infof("[%s] disguise complete: %d images in %s", op, len(chunks), outputDir)
	return result, nil
}

// writeChunk reads one chunk through its own file handle and writes its image
func (d *Disguiser) writeChunk(inputPath, outPath string, c chunker.Chunk, tier layout.Tier) error {
	file, err := d.open(inputPath)
	if err != nil {
		return status.New(status.FileOpenErr, "disguise", inputPath, err)
	}
	defer file.Close()

	f := frame.New(tier)
	if _, err := io.ReadFull(io.NewSectionReader(file, c.Offset, int64(c.Length)), f.Payload(c.Length)); err != nil {
		return status.New(status.FileOpenErr, "disguise", inputPath,
			fmt.Errorf("read chunk %d at offset %d: %w", c.Index, c.Offset, err))
	}

	if err := d.codec.Encode(outPath, f.Bytes(), tier.Width, tier.Height); err != nil {
		return status.New(status.FileWriteErr, "disguise", outPath, err)
	}

	glog.V(1).Infof("chunk %d: %d bytes at offset %d -> %s", c.Index, c.Length, c.Offset, outPath)
	return nil
}

func checkInput(inputPath string) (fs.FileInfo, error) {
	info, err := os.Stat(inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, status.New(status.FileNotExists, "disguise", inputPath, nil)
	}
	if err != nil {
		return nil, status.New(status.FileOpenErr, "disguise", inputPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, status.New(status.NotFile, "disguise", inputPath, nil)
	}
	return info, nil
}

func prepareOutputDir(outputDir string) error {
	info, err := os.Stat(outputDir)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.Mkdir(outputDir, 0755); err != nil {
			return status.New(status.DirCreateErr, "disguise", outputDir, err)
		}
		return nil
	}
	if err != nil {
		return status.New(status.DirCreateErr, "disguise", outputDir, err)
	}
	if !info.IsDir() {
		return status.New(status.NotDir, "disguise", outputDir, nil)
	}
	return nil
}
