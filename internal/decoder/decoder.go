package decoder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/faanross/simulacra_png/internal/chunker"
	"github.com/faanross/simulacra_png/internal/frame"
	"github.com/faanross/simulacra_png/internal/imaging"
	"github.com/faanross/simulacra_png/internal/status"
	"github.com/faanross/simulacra_png/internal/workers"
)

// Collector rebuilds a file from a directory of disguise images
type Collector struct {
	pool   *workers.Pool
	lookup func(ext string) (imaging.Codec, bool)
}

// Result describes a finished recovery
type Result struct {
	Entries []chunker.Entry // In the order they were written
	Bytes   int64
}

// NewCollector creates a collector that decodes images on pool
func NewCollector(pool *workers.Pool) *Collector {
	return &Collector{pool: pool, lookup: imaging.ForExt}
}

// Recover reassembles the images in inputDir into outputPath.
//
// outputPath must not exist. Images are decoded in parallel, but payloads are
// appended strictly by ascending chunk id from this goroutine only. On any
// failure the partial output is removed.
func (c *Collector) Recover(inputDir, outputPath string) (*Result, error) {
	if err := checkDir(inputDir); err != nil {
		return nil, err
	}
	if _, err := os.Lstat(outputPath); err == nil {
		return nil, status.New(status.FileAlreadyExists, "recover", outputPath, nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, status.New(status.FileOpenErr, "recover", outputPath, err)
	}

	entries, err := c.scan(inputDir)
	if err != nil {
		return nil, err
	}

	op := uuid.NewString()[:8]
	glog.Infof("[%s] recover %s: %d images -> %s", op, inputDir, len(entries), outputPath)
	if missing := chunker.FindMissing(entries); len(missing) > 0 {
		glog.Warningf("[%s] chunk ids missing from %s: %v", op, inputDir, missing)
	}

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil, status.New(status.FileAlreadyExists, "recover", outputPath, err)
	}
	if err != nil {
		return nil, status.New(status.FileOpenErr, "recover", outputPath, err)
	}

	batch := c.pool.NewBatch()
	futures := make([]*workers.Future[[]byte], len(entries))
	for i, e := range entries {
		futures[i] = workers.Submit(batch, func() ([]byte, error) {
			return c.readEntry(e)
		})
	}

	var written int64
	var failure error
	for i := range futures {
		payload, err := futures[i].Wait()
		futures[i] = nil
		if err != nil {
			failure = err
			break
		}
		if _, err := out.Write(payload); err != nil {
			failure = status.New(status.FileWriteErr, "recover", outputPath, err)
			break
		}
		written += int64(len(payload))
	}
	// Errors were already taken from the futures in id order.
	_ = batch.Wait()

	if err := out.Close(); err != nil && failure == nil {
		failure = status.New(status.FileWriteErr, "recover", outputPath, err)
	}
	if failure != nil {
		glog.Errorf("[%s] recover failed: %v", op, failure)
		if err := os.Remove(outputPath); err != nil {
			glog.Errorf("[%s] cannot remove partial output: %v", op, err)
		}
		return nil, failure
	}

	glog.Infof("[%s] recover complete: %d bytes written to %s", op, written, outputPath)
	return &Result{Entries: entries, Bytes: written}, nil
}

// readEntry decodes one image and returns the payload it carries
func (c *Collector) readEntry(e chunker.Entry) ([]byte, error) {
	codec, ok := c.lookup(e.Ext)
	if !ok {
		return nil, status.New(status.FileTypeUnknown, "recover", e.Path, nil)
	}

	pix, err := codec.Decode(e.Path)
	if err != nil {
		return nil, status.New(status.DataErr, "recover", e.Path, err)
	}

	payload, err := frame.Extract(pix)
	if err != nil {
		return nil, status.WithPath(err, e.Path)
	}
	// Keep only the payload alive until it is written, not the whole frame.
	payload = append([]byte(nil), payload...)

	glog.V(1).Infof("chunk %d: %d bytes from %s", e.ID, len(payload), e.Path)
	return payload, nil
}

// Scan lists the disguise images in inputDir, ordered by chunk id.
// Any entry that is not a recognisable image rejects the whole directory.
func (c *Collector) Scan(inputDir string) ([]chunker.Entry, error) {
	if err := checkDir(inputDir); err != nil {
		return nil, err
	}
	return c.scan(inputDir)
}

func (c *Collector) scan(inputDir string) ([]chunker.Entry, error) {
	dir, err := os.Open(inputDir)
	if err != nil {
		return nil, status.New(status.FileOpenErr, "scan", inputDir, err)
	}
	defer dir.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort by name.
	listing, err := dir.ReadDir(-1)
	if err != nil {
		return nil, status.New(status.FileOpenErr, "scan", inputDir, err)
	}
	if len(listing) == 0 {
		return nil, status.Errorf(status.FileTypeUnknown, "scan", inputDir, "no images found")
	}

	known := func(ext string) bool {
		_, ok := c.lookup(ext)
		return ok
	}

	entries := make([]chunker.Entry, 0, len(listing))
	for _, de := range listing {
		path := filepath.Join(inputDir, de.Name())
		if !de.Type().IsRegular() {
			return nil, status.Errorf(status.FileTypeUnknown, "scan", path, "not a regular file")
		}
		parsed, ok := frame.ParseName(de.Name(), known)
		if !ok {
			return nil, status.Errorf(status.FileTypeUnknown, "scan", path, "name does not match <name>_<id>.<%v>", imaging.Formats())
		}
		entries = append(entries, chunker.Entry{Path: path, ID: parsed.ID, Ext: parsed.Ext})
	}

	return chunker.Order(entries), nil
}

func checkDir(inputDir string) error {
	info, err := os.Stat(inputDir)
	if errors.Is(err, fs.ErrNotExist) {
		return status.New(status.DirNotExists, "recover", inputDir, nil)
	}
	if err != nil {
		return status.New(status.DirNotExists, "recover", inputDir, err)
	}
	if !info.IsDir() {
		return status.New(status.NotDir, "recover", inputDir, nil)
	}
	return nil
}
