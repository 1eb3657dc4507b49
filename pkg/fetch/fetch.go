package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	v1 "github.com/djcass44/debdeps/pkg/api/v1"
	"github.com/djcass44/debdeps/pkg/downloader"
	"github.com/djcass44/debdeps/pkg/requestutil"
	"github.com/go-logr/logr"
)

var (
	ErrUnknownMode = errors.New("unknown repository mode")
	ErrDownload    = errors.New("failed to download package index")
	ErrNotFound    = errors.New("package index file not found")
	ErrRead        = errors.New("failed to read package index")
	ErrDecompress  = errors.New("failed to decompress package index")
	ErrDecode      = errors.New("package index is not valid UTF-8")
)

// Fetch retrieves the package index at src and returns its
// decoded text. Compressed indices are expanded based on the
// suffix of src.
func Fetch(ctx context.Context, src string, mode v1.RepoMode) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("src", src, "mode", mode)

	var path string
	switch mode {
	case v1.RepoModeURL:
		// downloads never outlive the invocation
		dir, err := os.MkdirTemp("", "debdeps-*")
		if err != nil {
			return "", fmt.Errorf("%w: preparing download directory: %w", ErrDownload, err)
		}
		defer os.RemoveAll(dir)

		dl, err := downloader.NewDownloader(dir)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrDownload, err)
		}
		path, err = dl.Download(ctx, src)
		if err != nil {
			return "", fmt.Errorf("%w from '%s': %w", ErrDownload, src, err)
		}
	case v1.RepoModeFile:
		path = filepath.Clean(src)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	data, err := read(ctx, src, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrDecode, src)
	}
	log.V(1).Info("successfully fetched index", "bytes", len(data))
	return string(data), nil
}

// read returns the contents of the file at path, decompressing
// it if the original name suggests it is compressed.
func read(ctx context.Context, name, path string) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	if !requestutil.IsCompressed(name) {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		return data, nil
	}

	log.V(2).Info("decompressing index")
	r, err := requestutil.NewReader(name, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	return data, nil
}
