package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/articlecheck/gin"
)

// Run executes the serve command. It blocks until the context is cancelled
// and the server has shut down.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := gin.NewServer(gin.Config{
		Addr:       ":" + strconv.Itoa(c.Port),
		CORSOrigin: c.CORSOrigin,
	}, deps.Service, deps.Logger, gin.WithMetrics(deps.Metrics, deps.Metrics.Handler()))

	if err := server.Run(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
