//go:build !raylib

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The raylib build of snake requires the raylib build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags raylib ./cmd/snake-rl`.")
	os.Exit(2)
}
