// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browser implements headless browser detection and print-to-PDF
// execution.
// Implements: prd002-pdf-rendering R4.1-R4.6 (browser strategy);
//
//	docs/ARCHITECTURE § Rendering.
package browser

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/docpress/internal/executil"
)

const (
	binChrome   = "google-chrome"
	binChromium = "chromium"
	binFirefox  = "firefox"
)

// Browser provides headless printing operations: checking availability and
// printing an HTML page to a PDF file.
type Browser interface {
	// Name returns the browser binary name.
	Name() string

	// Available reports whether the browser binary exists on PATH and
	// responds to a version command.
	Available() bool

	// PrintToPDF renders the HTML page and writes a PDF to outPath.
	PrintToPDF(page []byte, outPath string) error
}

// pageInput selects how a browser receives the HTML page.
type pageInput int

const (
	// inputDataURI passes the page inline as a base64 data: URI.
	inputDataURI pageInput = iota
	// inputTempFile writes the page to a temporary file removed after printing.
	inputTempFile
)

// browser implements Browser for a specific binary. The Chromium family and
// Firefox share the same print flag; they differ in the headless flags they
// need and in how the page is handed over.
type browser struct {
	bin   string
	flags []string // headless flags preceding the print arguments
	input pageInput
	exec  executil.Executor
}

func (b *browser) Name() string { return b.bin }

func (b *browser) Available() bool {
	if _, err := b.exec.LookPath(b.bin); err != nil {
		return false
	}
	return b.exec.RunSilent(b.bin, "--version") == nil
}

func (b *browser) PrintToPDF(page []byte, outPath string) error {
	target, cleanup, err := b.pageTarget(page)
	if err != nil {
		return err
	}
	defer cleanup()

	args := make([]string, 0, len(b.flags)+2)
	args = append(args, b.flags...)
	args = append(args, "--print-to-pdf="+outPath, target)

	if out, err := b.exec.RunCapture(b.bin, args...); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("printing with %s: %w: %s", b.bin, err, msg)
		}
		return fmt.Errorf("printing with %s: %w", b.bin, err)
	}
	return nil
}

// pageTarget returns the argument that tells the browser where to load the
// page from, plus a cleanup function for any temporary file created. The
// cleanup runs whether or not printing succeeds.
func (b *browser) pageTarget(page []byte) (string, func(), error) {
	if b.input == inputDataURI {
		return "data:text/html;base64," + base64.StdEncoding.EncodeToString(page), func() {}, nil
	}

	tmp, err := os.CreateTemp("", "docpress-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp page for %s: %w", b.bin, err)
	}
	if _, err := tmp.Write(page); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("writing temp page for %s: %w", b.bin, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("writing temp page for %s: %w", b.bin, err)
	}
	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func newChromeBrowser(exec executil.Executor) *browser {
	return &browser{
		bin:   binChrome,
		flags: []string{"--headless", "--disable-gpu", "--no-sandbox"},
		input: inputDataURI,
		exec:  exec,
	}
}

func newChromiumBrowser(exec executil.Executor) *browser {
	return &browser{
		bin:   binChromium,
		flags: []string{"--headless", "--disable-gpu", "--no-sandbox"},
		input: inputDataURI,
		exec:  exec,
	}
}

func newFirefoxBrowser(exec executil.Executor) *browser {
	return &browser{
		bin:   binFirefox,
		flags: []string{"--headless"},
		input: inputTempFile,
		exec:  exec,
	}
}

// Detect returns the available browsers in preference order: Chrome first,
// then Chromium, then Firefox. An empty slice means no headless browser is
// installed.
func Detect() []Browser {
	return detect(executil.System)
}

func detect(exec executil.Executor) []Browser {
	var found []Browser
	for _, b := range []*browser{
		newChromeBrowser(exec),
		newChromiumBrowser(exec),
		newFirefoxBrowser(exec),
	} {
		if b.Available() {
			found = append(found, b)
		}
	}
	return found
}
