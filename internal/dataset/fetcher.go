package dataset

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/juice-examples/juice-mnist/internal/output"
	"github.com/juice-examples/juice-mnist/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FetchJob tracks a single resource through download and decode.
type FetchJob struct {
	ID               string
	Resource         Resource
	FileName         string
	LocalPath        string
	DecompressedPath string
	RawBytes         int64
	DecodedBytes     int64
}

type Fetcher struct {
	client    utils.HTTPDoer
	resources []Resource
}

func NewFetcher(client utils.HTTPDoer) *Fetcher {
	return &Fetcher{
		client:    client,
		resources: Resources(),
	}
}

// FetchAll downloads and decompresses every resource into dir, in order.
// The first failure aborts the run; files written for earlier resources are
// left in place.
func (f *Fetcher) FetchAll(ctx context.Context, dir string) error {
	if dir == "" {
		return newFetchError(ErrMissingArgument, "", nil)
	}
	for _, res := range f.resources {
		job, err := f.fetchOne(ctx, dir, res)
		if err != nil {
			log.Error().Str("op", "dataset/fetch").Err(err).Msg("aborting download")
			return err
		}
		output.PrintSuccess(fmt.Sprintf("%s %s %s", job.FileName, output.StyleSymbols["arrow"], output.FormatBytes(uint64(job.DecodedBytes))))
	}
	return nil
}

func (f *Fetcher) fetchOne(ctx context.Context, dir string, res Resource) (*FetchJob, error) {
	name, err := res.FileName()
	if err != nil {
		return nil, err
	}
	job := &FetchJob{
		ID:               uuid.NewString(),
		Resource:         res,
		FileName:         name,
		LocalPath:        filepath.Join(dir, name),
		DecompressedPath: filepath.Join(dir, DecompressedName(name)),
	}
	logger := log.With().Str("op", "dataset/fetch").Str("job", job.ID).Str("file", name).Logger()

	output.PrintPending("Downloading " + name)
	if err := f.download(ctx, job, logger); err != nil {
		return job, err
	}
	output.PrintPending("Decoding file " + name)
	if err := decode(job, logger); err != nil {
		return job, err
	}
	return job, nil
}

func (f *Fetcher) download(ctx context.Context, job *FetchJob, logger zerolog.Logger) error {
	outFile, err := os.Create(job.LocalPath)
	if err != nil {
		return newFetchError(ErrFilesystem, job.FileName, err)
	}
	defer outFile.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.Resource.URL, nil)
	if err != nil {
		return newFetchError(ErrTransport, job.FileName, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return newFetchError(ErrTransport, job.FileName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newFetchError(ErrTransport, job.FileName, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}
	logger.Debug().Int64("contentLength", resp.ContentLength).Msg("response received")

	progress := output.NewProgress(job.FileName, resp.ContentLength)
	defer progress.Finish()
	buffer := make([]byte, utils.DefaultBufferSize)
	for {
		bytesRead, readErr := resp.Body.Read(buffer)
		if bytesRead > 0 {
			if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
				return newFetchError(ErrFilesystem, job.FileName, writeErr)
			}
			progress.Write(buffer[:bytesRead])
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return newFetchError(ErrTransport, job.FileName, readErr)
		}
	}
	if err := outFile.Close(); err != nil {
		return newFetchError(ErrFilesystem, job.FileName, err)
	}
	job.RawBytes = progress.Written()
	logger.Debug().Int64("bytes", job.RawBytes).Str("path", job.LocalPath).Msg("download complete")
	return nil
}

func decode(job *FetchJob, logger zerolog.Logger) error {
	inFile, err := os.Open(job.LocalPath)
	if err != nil {
		return newFetchError(ErrFilesystem, job.FileName, err)
	}
	defer inFile.Close()

	zr, err := gzip.NewReader(inFile)
	if err != nil {
		return newFetchError(ErrDecode, job.FileName, err)
	}
	defer zr.Close()
	zr.Multistream(false)

	// a truncated member surfaces here as io.ErrUnexpectedEOF or a checksum error
	data, err := io.ReadAll(zr)
	if err != nil {
		return newFetchError(ErrDecode, job.FileName, err)
	}
	if err := os.WriteFile(job.DecompressedPath, data, 0644); err != nil {
		return newFetchError(ErrFilesystem, DecompressedName(job.FileName), err)
	}
	job.DecodedBytes = int64(len(data))
	logger.Debug().Int64("bytes", job.DecodedBytes).Str("path", job.DecompressedPath).Msg("decode complete")
	return nil
}
