// Command vttermdemo spawns the user's shell under a pty, puts the local
// terminal into raw mode, and feeds the pty's output through a
// vtterm.Terminal while also passing it straight to stdout — a minimal
// stand-in for a real renderer, demonstrating the external-collaborator
// boundary spec.md §1 draws around the library (pty spawning, rendering,
// and keyboard encoding are all the host's job, not vtterm's).
//
// Grounded on javanhut-RavenTerminal's shell/pty.go (creack/pty session
// setup) and majorcontext-moat's dependency on golang.org/x/term for raw
// mode, per SPEC_FULL.md §0/§2.
package main

import (
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/dgvt/vtterm"
)

func main() {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		log.Fatalf("vttermdemo: starting pty: %v", err)
	}
	defer ptmx.Close()

	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		cols, rows = w, h
	}
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})

	term_, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer term.Restore(int(os.Stdin.Fd()), term_)
	}

	vt := vtterm.New(
		vtterm.WithSize(cols, rows),
		vtterm.WithWriter(ptmx),
	)
	vt.OnTitle(func(title string) {
		_, _ = os.Stdout.Write([]byte("\x1b]0;" + title + "\x07"))
	})

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	go func() {
		for range sigwinch {
			if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
				_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
				vt.Resize(w, h)
			}
		}
	}()

	go io.Copy(ptmx, os.Stdin)

	out := io.MultiWriter(os.Stdout, vt)
	if _, err := io.Copy(out, ptmx); err != nil && err != io.EOF {
		log.Printf("vttermdemo: pty closed: %v", err)
	}

	_ = cmd.Wait()
}
