package client

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// decompressTar auto-detects gzip vs xz by magic bytes (the archive is
// fetched into memory, unlike internal/archive.Reader's disk-path/extension
// detection) and returns every entry as a decoded vocab.ArchiveFile.
func decompressTar(raw []byte, sourceName string) ([]vocab.ArchiveFile, error) {
	var reader io.Reader
	switch {
	case bytes.HasPrefix(raw, xzMagic):
		xzr, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	case bytes.HasPrefix(raw, gzipMagic):
		gzr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr
	default:
		return nil, fmt.Errorf("unrecognized compression for %s", sourceName)
	}

	tr := tar.NewReader(reader)
	var files []vocab.ArchiveFile
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar header: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", hdr.Name, err)
		}
		files = append(files, vocab.ArchiveFile{Name: hdr.Name, Data: data})
	}
	return files, nil
}
