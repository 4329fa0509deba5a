package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decodedFile closes the decompressor before the file beneath it.
type decodedFile struct {
	io.Reader
	file    *os.File
	release func() error
}

func (d *decodedFile) Close() error {
	err := d.release()
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// openInput opens path for reading, or stdin for "" and "-". Files ending in
// .zst or .gz are decompressed on the fly.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &decodedFile{Reader: dec, file: f, release: func() error {
			dec.Close()
			return nil
		}}, nil
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &decodedFile{Reader: zr, file: f, release: zr.Close}, nil
	}
	return f, nil
}

func readInput(path string) (string, error) {
	r, err := openInput(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
