//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/rope-view` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless counting use `go run ./cmd/rope run <file>`.")
	os.Exit(2)
}
