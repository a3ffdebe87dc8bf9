package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/articlecheck"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.Analyze(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlecheck.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
