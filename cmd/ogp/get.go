package main

import (
	"encoding/json"
	"fmt"

	"github.com/inutamago-dogegg/ogp"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	preview, err := deps.Previewer.FetchPreview(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(preview)
}
