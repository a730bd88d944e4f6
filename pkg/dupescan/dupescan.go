package dupescan

import (
	"context"
	"runtime"
	"sync"

	"github.com/arvheim/fkit/pkg/expression"
	"github.com/arvheim/fkit/pkg/hasher"
	"github.com/arvheim/fkit/pkg/hashindex"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/paths"
)

func New() *Scanner {
	return &Scanner{
		Workers: runtime.NumCPU(),
		log:     logger.GetLogger("dupescan"),
	}
}

// Scan walks root, hashes every file exactly once and reports files whose
// digest matches an earlier-seen file. Each duplicate is attributed to the
// single earliest file in traversal order with that content. The first read
// error aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Record, error) {
	files, _, err := paths.GetFilesInFolder(root)
	if err != nil {
		return nil, err
	}

	files, err = expression.FilterFiles(files, s.Filters)
	if err != nil {
		return nil, err
	}

	if s.OnWalkComplete != nil {
		var totalBytes uint64
		for _, f := range files {
			totalBytes += uint64(f.Size)
		}
		s.OnWalkComplete(len(files), totalBytes)
	}

	digests, err := s.hashAll(ctx, files)
	if err != nil {
		return nil, err
	}

	// single ordered pass keeps first-seen-path-wins intact regardless of
	// which worker finished first
	index := hashindex.New()
	var records []Record

	for idx, f := range files {
		original, existing := index.Add(digests[idx], f.Path)
		if !existing {
			continue
		}

		s.log.Debugf("Duplicate content %s: %s (original %s)", digests[idx][:12], f.Path, original)
		records = append(records, Record{
			Path:     f.Path,
			Original: original,
			Size:     f.Size,
		})
	}

	s.log.Infof("Scanned %d files, %d unique, %d duplicates", len(files), index.Length(), len(records))

	return records, nil
}

func (s *Scanner) hashAll(ctx context.Context, files []paths.File) ([]string, error) {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	digests := make([]string, len(files))

	if len(files) == 0 {
		return digests, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		hashErr error
	)

	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				digest, err := hasher.HashFile(files[idx].Path)
				if err != nil {
					errOnce.Do(func() {
						hashErr = err
						cancel()
					})
					return
				}

				digests[idx] = digest

				if s.Progress != nil {
					s.Progress(files[idx].Size)
				}
			}
		}()
	}

dispatch:
	for idx := range files {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if hashErr != nil {
		return nil, hashErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return digests, nil
}
