package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/dendrascience/rawpack/internal/cmd"
)

func init() {
	// The compress worker pool is sized from GOMAXPROCS; honour container
	// CPU quotas.
	_, err := maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set maxprocs using package go.uber.org/automaxprocs/maxprocs: %v\n", err)
	}
}

func main() {
	if err := fang.Execute(context.Background(), cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
