package downloader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/hashicorp/go-getter"
)

type Downloader struct {
	dir string
}

func NewDownloader(dir string) (*Downloader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Downloader{dir: dir}, nil
}

// Download retrieves a single file into the downloader's directory
// and returns the path it was written to. Each call writes a new
// file. Archives are never unpacked, even if the url looks like one.
func (d *Downloader) Download(ctx context.Context, src string) (string, error) {
	log := logr.FromContextOrDiscard(ctx)
	log.V(1).Info("downloading file", "src", src)

	uri, err := url.Parse(src)
	if err != nil {
		log.Error(err, "failed to parse url")
		return "", err
	}

	// go-getter decompresses anything with a known
	// extension unless we tell it not to
	q := uri.Query()
	q.Set("archive", "false")
	uri.RawQuery = q.Encode()

	// repeated downloads of the same url into one directory
	// never overwrite each other
	dst := filepath.Join(d.dir, fmt.Sprintf("%s-%s", uuid.NewString(), path.Base(uri.Path)))
	log.V(2).Info("preparing to download file", "dst", dst)

	client := &getter.Client{
		Ctx:             ctx,
		Src:             uri.String(),
		Dst:             dst,
		Mode:            getter.ClientModeFile,
		DisableSymlinks: true,
	}
	if err := client.Get(); err != nil {
		log.Error(err, "failed to download file")
		return "", err
	}

	return dst, nil
}
