package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
)

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit

	// appFs is where namespaces configs, local repositories and local indices live.
	// Tests replace it with an in-memory file system.
	appFs = afero.NewOsFs()

	// infoLogger wraps informative messages to os.Stdout without cluttering expected output in tests.
	// To be used instead on fmt.Printf(os.Stdout, ...)
	infoLogger = log.New(os.Stdout, "", 0)
)

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalln(msg)
	} else {
		logFatalf("%v", fmt.Errorf("%s: %w", msg, err))
	}
}
