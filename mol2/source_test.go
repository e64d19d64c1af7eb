package mol2

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestSourceLines(Te *testing.T) {
	S := StringSource("a\r\nb\n\nlast")
	want := []string{"a", "b", "", "last"}
	for i, w := range want {
		l, err := S.Next()
		if err != nil {
			Te.Fatal(err)
		}
		if l.Text != w || l.Number != i+1 {
			Te.Errorf("line %d: got %q (number %d)", i+1, l.Text, l.Number)
		}
	}
	if _, err := S.Next(); err != io.EOF {
		Te.Errorf("expected io.EOF, got %v", err)
	}
	S.Close()
	if err := S.Close(); err != nil {
		Te.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestOpenMissing(Te *testing.T) {
	_, err := Open("../test/does-not-exist.mol2")
	if err == nil {
		Te.Fatal("opening a missing file should fail")
	}
	if !os.IsNotExist(err.(Error).Unwrap()) {
		Te.Errorf("the underlying error should be a not-exist error, got %v", err)
	}
}

func compressedCopy(Te *testing.T, ext string) string {
	data, err := os.ReadFile("../test/three.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	var w io.WriteCloser
	switch ext {
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".zst":
		w, err = zstd.NewWriter(&buf)
		if err != nil {
			Te.Fatal(err)
		}
	}
	if _, err := w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "three.mol2"+ext)
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestCompressedSources(Te *testing.T) {
	plain, err := Open("../test/three.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	defer plain.Close()
	ref, _, err := Segment(plain, DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	for _, ext := range []string{".gz", ".zst"} {
		src, err := Open(compressedCopy(Te, ext))
		if err != nil {
			Te.Fatal(err)
		}
		blocks, _, err := Segment(src, DefaultOptions())
		src.Close()
		if err != nil {
			Te.Fatal(err)
		}
		if len(blocks) != len(ref) {
			Te.Fatalf("%s: expected %d blocks, got %d", ext, len(ref), len(blocks))
		}
		for i := range blocks {
			if blocks[i].Text() != ref[i].Text() || blocks[i].First() != ref[i].First() {
				Te.Errorf("%s: block %d differs from the plain file", ext, i)
			}
		}
	}
}
