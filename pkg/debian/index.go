package debian

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

var ErrNotFound = errors.New("package not found")

// NewIndex parses the given index text. The source is only
// used for reporting.
func NewIndex(ctx context.Context, source, text string) *Index {
	log := logr.FromContextOrDiscard(ctx).WithValues("source", source)
	out := Parse(text)
	log.V(1).Info("successfully decoded index", "count", len(out))
	return &Index{
		packages: out,
		source:   source,
	}
}

func (idx *Index) Count() int {
	return len(idx.packages)
}

func (idx *Index) Source() string {
	return idx.source
}

// Get returns the record of the named package or an
// error wrapping ErrNotFound.
func (idx *Index) Get(name string) (Record, error) {
	r, ok := idx.packages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return r, nil
}

// GetDependencies returns the direct dependencies of the named
// package. A missing Depends field yields an empty list.
func (idx *Index) GetDependencies(ctx context.Context, name string) ([]string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("name", name)
	r, err := idx.Get(name)
	if err != nil {
		log.V(1).Info("failed to locate package", "source", idx.source)
		return nil, err
	}
	deps := ExtractDependencies(r[FieldDepends])
	log.V(2).Info("found package match", "version", r["Version"], "deps", len(deps))
	return deps, nil
}
