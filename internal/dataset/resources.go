package dataset

import (
	"net/url"
	"path/filepath"
	"slices"
	"strings"
)

const compressedSuffix = ".gz"

type Resource struct {
	URL string
}

var dataLinks = [...]Resource{
	{URL: "http://yann.lecun.com/exdb/mnist/train-images-idx3-ubyte.gz"},
	{URL: "http://yann.lecun.com/exdb/mnist/train-labels-idx1-ubyte.gz"},
	{URL: "http://yann.lecun.com/exdb/mnist/t10k-images-idx3-ubyte.gz"},
	{URL: "http://yann.lecun.com/exdb/mnist/t10k-labels-idx1-ubyte.gz"},
}

// Resources returns the MNIST files in download order.
func Resources() []Resource {
	return slices.Clone(dataLinks[:])
}

// FileName is the last path segment of the resource URL.
func (r Resource) FileName() (string, error) {
	parsed, err := url.Parse(r.URL)
	if err != nil {
		return "", newFetchError(ErrURLParse, "", err)
	}
	if parsed.Opaque != "" {
		return "", newFetchError(ErrMissingPathSegment, "", nil)
	}
	segments := strings.Split(parsed.Path, "/")
	name := segments[len(segments)-1]
	if name == "" || name == "." || name == ".." {
		return "", newFetchError(ErrMissingPathSegment, "", nil)
	}
	return name, nil
}

func (r Resource) LocalPath(dir string) (string, error) {
	name, err := r.FileName()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (r Resource) DecompressedPath(dir string) (string, error) {
	name, err := r.FileName()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DecompressedName(name)), nil
}

func DecompressedName(fileName string) string {
	return strings.TrimSuffix(fileName, compressedSuffix)
}
