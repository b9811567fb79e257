package decoder

import (
	"github.com/faanross/simulacra_png/internal/chunker"
	"github.com/faanross/simulacra_png/internal/frame"
	"github.com/faanross/simulacra_png/internal/layout"
	"github.com/faanross/simulacra_png/internal/status"
	"github.com/faanross/simulacra_png/internal/workers"
)

// FrameInfo is what one image's header says about its chunk
type FrameInfo struct {
	Entry    chunker.Entry
	Stored   uint64 // Payload length from the header
	Capacity int64  // Frame bytes available after the header
	Err      error  // Non-nil when the image could not be read
}

// Inspect reads the header of every image in inputDir without writing
// anything. Unreadable images are reported per entry rather than aborting.
func (c *Collector) Inspect(inputDir string) ([]FrameInfo, error) {
	entries, err := c.Scan(inputDir)
	if err != nil {
		return nil, err
	}

	batch := c.pool.NewBatch()
	futures := make([]*workers.Future[FrameInfo], len(entries))
	for i, e := range entries {
		futures[i] = workers.Submit(batch, func() (FrameInfo, error) {
			return c.inspectEntry(e), nil
		})
	}
	_ = batch.Wait()

	infos := make([]FrameInfo, len(entries))
	for i, f := range futures {
		infos[i], _ = f.Wait()
	}
	return infos, nil
}

func (c *Collector) inspectEntry(e chunker.Entry) FrameInfo {
	info := FrameInfo{Entry: e}

	codec, ok := c.lookup(e.Ext)
	if !ok {
		info.Err = status.New(status.FileTypeUnknown, "inspect", e.Path, nil)
		return info
	}
	pix, err := codec.Decode(e.Path)
	if err != nil {
		info.Err = status.New(status.DataErr, "inspect", e.Path, err)
		return info
	}

	info.Capacity = int64(len(pix)) - layout.HEADER_SIZE
	if _, err := frame.Extract(pix); err != nil {
		info.Err = status.WithPath(err, e.Path)
	}
	info.Stored, _ = frame.StoredLength(pix)
	return info
}
