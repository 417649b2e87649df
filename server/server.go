// Package server implements the supplemented TCP REPL server (SPEC_FULL.md
// §10.1), grounded in the teacher's main.startServer/handleClient: each
// accepted connection gets its own goroutine running one independent REPL
// session — its own Interpreter, its own globals environment — with the
// connection itself as both reader and writer. Sessions share no state.
package server

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/loxrun/lox/repl"
)

var cyanColor = color.New(color.FgCyan)
var redColor = color.New(color.FgRed)

// Serve listens on port and handles connections indefinitely. It returns
// only when the listen itself fails; an Accept error is logged and the loop
// goes on accepting. banner/version/author/line/
// license/prompt configure each connection's REPL session identically to
// the local one.
func Serve(port, banner, version, author, line, license, prompt string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server on port %s: %w", port, err)
	}
	defer listener.Close()
	cyanColor.Printf("Lox REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn, banner, version, author, line, license, prompt)
	}
}

func handleConn(conn net.Conn, banner, version, author, line, license, prompt string) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	session := repl.New(banner, version, author, line, license, prompt)
	session.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
