// SquarePack packs rectangles into a square space and reports the smallest
// bounding box found.
//
// Build:
//   go build -o squarepack ./cmd/squarepack
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o squarepack.exe ./cmd/squarepack
//   GOOS=darwin  GOARCH=arm64 go build -o squarepack-darwin ./cmd/squarepack

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/piwi3910/SquarePack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The pack command has already printed its failure line.
		if !errors.Is(err, cli.ErrPlacementFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
