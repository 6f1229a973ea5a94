//go:build mage

// Package main provides build targets for the fileio project using Mage.
//
// Usage:
//
//	mage build      Compile the fileio binary to bin/ with version metadata
//	mage test       Run all tests
//	mage testRace   Run all tests with the race detector
//	mage lint       Run go vet and golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install fileio to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName     = "fileio"
	binaryDir      = "bin"
	mainPkg        = "."
	versionPkg     = "github.com/dendrascience/dendra-fileio/version"
	defaultVersion = "dev"
)

// ldflags stamps the version package with git metadata when available.
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		if tag, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && tag != "" {
			version = tag
		} else {
			version = defaultVersion
		}
	}
	commit, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	flags := []string{
		"-s", "-w",
		fmt.Sprintf("-X %s.Version=%s", versionPkg, version),
		fmt.Sprintf("-X %s.Commit=%s", versionPkg, commit),
		fmt.Sprintf("-X %s.Date=%s", versionPkg, time.Now().UTC().Format(time.RFC3339)),
	}
	return strings.Join(flags, " ")
}

// Build compiles the fileio binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), mainPkg)
}

// Install installs fileio to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestRace runs all tests with the race detector.
func TestRace() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
