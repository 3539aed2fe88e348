package shared

import (
	"context"
	"path"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/leocov-dev/dpwrap/core"
)

// ProgressFetcher shows one progress line per download
type ProgressFetcher struct {
	inner     core.Fetcher
	container *mpb.Progress
}

func NewProgressFetcher(inner core.Fetcher) *ProgressFetcher {
	return &ProgressFetcher{
		inner:     inner,
		container: mpb.New(),
	}
}

func (p *ProgressFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	bar := p.container.AddBar(1,
		mpb.PrependDecorators(
			decor.Name("Downloading "+path.Base(url), decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)
	defer bar.Increment()

	return p.inner.Fetch(ctx, url)
}

// Wait blocks until every progress line has been rendered
func (p *ProgressFetcher) Wait() {
	p.container.Wait()
}
