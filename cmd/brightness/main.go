package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go-image-brightness/internal/apperrors"
	"go-image-brightness/internal/loader"
	"go-image-brightness/internal/service"
)

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <file>\n", prog)
	fmt.Fprintln(os.Stderr, "Prints the average brightness of an image file as a value in [0, 1].")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		err := apperrors.NewUsageError("expected exactly one image file argument")
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(apperrors.GetExitCode(err))
	}

	svc := service.NewBrightnessService(loader.NewFileLoader())
	if err := svc.Run(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperrors.GetExitCode(err))
	}
}
