package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// test seams
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getPassword prompts on w and reads a password. On a terminal the input is
// not echoed; otherwise a single line is read from r so the command can be
// scripted.
func getPassword(r io.Reader, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if r == os.Stdin && isTerminal(fd) {
		if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
			return "", err
		}
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
