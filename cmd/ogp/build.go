package main

import (
	"fmt"

	"github.com/inutamago-dogegg/ogp"
	"github.com/inutamago-dogegg/ogp/preview"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	content, err := deps.Content.LoadContent(c.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	urls := ogp.DistinctURLs(content.Links(), ogp.LinkFilter{Sections: c.Section})
	fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", len(urls))

	if deps.Cache != nil {
		if n, err := deps.Cache.DeleteExpired(deps.Ctx); err != nil {
			deps.Logger.Warn("prune cache", "err", err)
		} else if n > 0 {
			deps.Logger.Debug("pruned cache", "rows", n)
		}
	}

	collector := &preview.Collector{
		Previewer:   deps.Previewer,
		Concurrency: c.Concurrency,
	}
	if c.RPS > 0 {
		collector.RateLimiter = preview.NewDomainLimiter(c.RPS)
	}

	progress := func(event ogp.ProgressEvent) {
		if event.Error != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, ogp.ErrorMessage(event.Error))
		}
	}

	previews, err := collector.Collect(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error collecting previews: %v\n", err)
		return err
	}

	if err := deps.NewMapWriter(c.Output).WriteMap(previews); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Output, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Wrote %d previews to %s\n", len(previews), c.Output)
	return nil
}
