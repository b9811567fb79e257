package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/faanross/simulacra_png/internal/status"
)

// exitUsage is returned for failures that carry no status, such as bad arguments.
const exitUsage = 64

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var se *status.Error
	if errors.As(err, &se) {
		return int(se.Status)
	}
	return exitUsage
}
