package layout

import "golang.org/x/exp/constraints"

// Frame geometry constants
const (
	HEADER_SIZE = 8 // Bytes for storing the chunk payload length
	CHANNELS    = 3 // Bytes per pixel (B, G, R)
)

// Tier is one image resolution and the payload it can carry.
type Tier struct {
	Name   string
	Width  int
	Height int
	Total  int64 // Width * Height * CHANNELS
	Usable int64 // Total - HEADER_SIZE
}

// Tiers is ordered largest first. The last entry is the floor tier.
// The 8k width is 7860, not 7680; images already produced with it must keep
// decoding to the same geometry.
var Tiers = []Tier{
	newTier("8k", 7860, 4320),
	newTier("4k", 3840, 2160),
	newTier("2k", 2560, 1440),
	newTier("1k", 1920, 1080),
}

func newTier(name string, width, height int) Tier {
	total := int64(width) * int64(height) * CHANNELS
	return Tier{
		Name:   name,
		Width:  width,
		Height: height,
		Total:  total,
		Usable: total - HEADER_SIZE,
	}
}

// Floor returns the smallest tier.
func Floor() Tier {
	return Tiers[len(Tiers)-1]
}

// Strategy is how one file is spread across images.
type Strategy struct {
	ChunkCount int
	Tier       Tier
}

// SelectStrategy picks the largest tier whose usable payload does not exceed
// fileSize, falling back to the floor tier for files smaller than every tier.
// A zero-byte file still gets one chunk.
func SelectStrategy(fileSize int64) Strategy {
	tier := Floor()
	for _, t := range Tiers {
		if fileSize >= t.Usable {
			tier = t
			break
		}
	}

	// Ceiling division so the last chunk keeps the remainder
	count := fileSize / tier.Usable
	if fileSize%tier.Usable != 0 {
		count++
	}
	if count == 0 {
		count = 1
	}

	return Strategy{ChunkCount: int(count), Tier: tier}
}

// IDWidth is the zero-pad width of chunk ids in file names: the digit count
// of the largest index, chunkCount-1, and never less than 1.
func IDWidth(chunkCount int) int {
	if chunkCount < 1 {
		return 1
	}
	return Digits(chunkCount - 1)
}

// Digits counts the decimal digits of n. Zero has one digit.
func Digits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	width := 1
	for n >= 10 {
		n /= 10
		width++
	}
	return width
}
