package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Name builds the output file name for chunk index:
// <base>_<index zero-padded to width>.<ext>
func Name(base string, index, width int, ext string) string {
	return fmt.Sprintf("%s_%0*d.%s", base, width, index, ext)
}

// ParsedName is a file name split into its parts.
type ParsedName struct {
	Base string
	ID   uint64
	Ext  string // lower case, no dot
}

// ParseName splits name on its last underscore and last dot. It reports false
// unless the part between them is a non-empty run of ASCII digits and the
// extension satisfies known.
func ParseName(name string, known func(ext string) bool) (ParsedName, bool) {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ParsedName{}, false
	}
	stem, ext := name[:dot], strings.ToLower(name[dot+1:])
	if ext == "" || (known != nil && !known(ext)) {
		return ParsedName{}, false
	}

	us := strings.LastIndexByte(stem, '_')
	if us < 0 {
		return ParsedName{}, false
	}
	digits := stem[us+1:]
	if digits == "" {
		return ParsedName{}, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return ParsedName{}, false
		}
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return ParsedName{}, false
	}

	return ParsedName{Base: stem[:us], ID: id, Ext: ext}, true
}
