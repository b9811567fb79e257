package status

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, OK},
		{"error", New(NotDir, "recover", "/tmp/x", nil), NotDir},
		{"wrapped", fmt.Errorf("outer: %w", New(DataErr, "extract", "a_0.png", io.ErrUnexpectedEOF)), DataErr},
		{"bare status", FileTypeUnknown, FileTypeUnknown},
		{"foreign", errors.New("boom"), DataErr},
	}

	assert := assert.New(t)
	for _, tc := range cases {
		assert.Equal(tc.want, Of(tc.err), tc.name)
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	err := New(FileOpenErr, "disguise", "in.bin", io.EOF)

	assert := assert.New(t)
	assert.ErrorIs(err, FileOpenErr)
	assert.NotErrorIs(err, DataErr)
	assert.ErrorIs(err, io.EOF)
}

func TestError_Message(t *testing.T) {
	err := Errorf(DataErr, "extract", "x_1.png", "stored length %d exceeds frame", 99)

	assert.EqualError(t, err, "extract: DATA_ERR (x_1.png): stored length 99 exceeds frame")
}

func TestWithPath(t *testing.T) {
	assert := assert.New(t)

	bare := New(DataErr, "extract", "", nil)
	assert.EqualError(WithPath(bare, "x_0.png"), "extract: DATA_ERR (x_0.png)")
	assert.EqualError(bare, "extract: DATA_ERR", "original error must not change")

	named := New(DataErr, "extract", "a.png", nil)
	assert.Same(named, WithPath(named, "b.png"))

	foreign := errors.New("boom")
	assert.Same(foreign, WithPath(foreign, "b.png"))
}

func TestStatus_StringUnknown(t *testing.T) {
	assert.Equal(t, "Status(99)", Status(99).String())
}
