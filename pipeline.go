package retile

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/retile/codec"
)

var errWalkCancelled = errors.New("walk cancelled")

func (r *Rearranger) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if ctx.Err() != nil {
				return errWalkCancelled
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					if file == base {
						return nil
					}
					return filepath.SkipDir
				}
				return nil
			}

			// Only descend into the top directory
			if info.Mode().IsDir() {
				if file != base {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !codec.Supported(file) {
				r.logger.Printf("Skipping \"%s\", unsupported format\n", file)
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errWalkCancelled
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (r *Rearranger) imageWorker(ctx context.Context, in <-chan string, outDir string, tileSize image.Point, ordering []int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if ctx.Err() != nil {
				continue
			}

			err := r.Rearrange(file, tileSize, ordering, filepath.Join(outDir, filepath.Base(file)))
			switch {
			case err == nil:
			case errors.Is(err, ErrInvalidConfiguration), errors.Is(err, ErrTileOutOfRange):
				r.logger.Printf("Skipping \"%s\", %s\n", file, err)
			default:
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch rearranges every supported image directly inside inDir using the same
// tile size and ordering, writing each result to outDir under the same name.
// Images the configuration is not valid for are logged and skipped.
func (r *Rearranger) Batch(ctx context.Context, inDir, outDir string, tileSize image.Point, ordering []int, workers int) error {
	dir, err := filepath.Abs(inDir)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := r.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := r.imageWorker(ctx, files, outDir, tileSize, ordering)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
