package chunker

import (
	"fmt"

	"github.com/faanross/simulacra_png/internal/layout"
	"golang.org/x/exp/slices"
)

// ================================================================================
// SPLITTING
// ================================================================================

// Chunk is one contiguous slice of the input file, bound to one image.
type Chunk struct {
	Index  int   // 0-based position in the file
	Offset int64 // Byte offset into the input file
	Length int   // Bytes carried; the last chunk holds the remainder
}

// Plan lays out the chunks for a file of fileSize bytes under s.
// Every chunk but the last is exactly s.Tier.Usable bytes long.
func Plan(fileSize int64, s layout.Strategy) []Chunk {
	chunks := make([]Chunk, 0, s.ChunkCount)

	remaining := fileSize
	var offset int64
	for i := 0; i < s.ChunkCount; i++ {
		size := s.Tier.Usable
		if remaining < size {
			size = remaining
		}
		chunks = append(chunks, Chunk{Index: i, Offset: offset, Length: int(size)})
		offset += size
		remaining -= size
	}

	return chunks
}

// ================================================================================
// REASSEMBLY ORDER
// ================================================================================

// Entry is one image found during recovery.
type Entry struct {
	Path string
	ID   uint64
	Ext  string
}

// Order returns entries ascending by ID. A listing whose ids already climb
// by exactly one from entry to entry is returned untouched; anything
// else is stable-sorted. Duplicate ids are not detected.
func Order(entries []Entry) []Entry {
	if contiguous(entries) {
		return entries
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b Entry) bool {
		return a.ID < b.ID
	})
	return sorted
}

func contiguous(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].ID != entries[i-1].ID+1 {
			return false
		}
	}
	return true
}

// FindMissing lists the ids absent from an ordered run starting at 0 and
// ending at the last entry's id.
func FindMissing(ordered []Entry) []uint64 {
	if len(ordered) == 0 {
		return nil
	}

	present := make(map[uint64]bool, len(ordered))
	for _, e := range ordered {
		present[e.ID] = true
	}

	var missing []uint64
	last := ordered[len(ordered)-1].ID
	for id := uint64(0); id <= last && len(missing) < 64; id++ {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// Describe summarises a plan for logs.
func Describe(fileSize int64, s layout.Strategy) string {
	overhead := "n/a"
	if fileSize > 0 {
		written := float64(s.ChunkCount) * float64(s.Tier.Total)
		overhead = fmt.Sprintf("%.1f%%", (written/float64(fileSize)-1)*100)
	}
	return fmt.Sprintf("%d bytes -> %d x %s (%dx%d, %d bytes/frame), overhead %s",
		fileSize, s.ChunkCount, s.Tier.Name, s.Tier.Width, s.Tier.Height, s.Tier.Usable, overhead)
}
