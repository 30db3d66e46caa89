// Package cmd holds helpers shared by sourcelink's commands
package cmd

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

var exiter = os.Exit

// Exit exits the process with code. Tests replace this with a panic via SetupTestExiter.
func Exit(code int) {
	exiter(code)
}

// SetupTestExiter makes Exit panic instead of exiting, so commands can be tested in-process
func SetupTestExiter(t *testing.T) {
	// require testing.T to ensure this is a test and not real code
	t.Helper()
	t.Log("Setting up exiter")
	exiter = func(code int) {
		panic(errors.Errorf("Attempted to exit with exit code %d", code))
	}
}
