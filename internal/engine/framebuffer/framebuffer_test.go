package framebuffer

import (
	"bytes"
	"testing"
)

func TestFlipRows(t *testing.T) {
	src := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}
	want := []byte{
		3, 3, 3, 3,
		2, 2, 2, 2,
		1, 1, 1, 1,
	}

	dst := make([]byte, len(src))
	FlipRows(dst, src, 4, 3)

	if !bytes.Equal(dst, want) {
		t.Errorf("FlipRows() = %v, want %v", dst, want)
	}
}
