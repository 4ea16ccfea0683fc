// Command passwd prints a salted PBKDF2 hash for a password read from stdin.
// The output can be inserted into the credentials table to seed users.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog/internal/infra/auth"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type output struct {
	Hash string `json:"password_hash"`
	Salt string `json:"password_salt"`
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdin.Fd()))); err != nil {
		fmt.Fprintln(os.Stderr, "passwd:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out, prompt io.Writer, interactive bool) error {
	password, err := readInput(in, prompt, interactive)
	if err != nil {
		return err
	}

	hasher, err := auth.NewPBKDF2Hasher()
	if err != nil {
		return errors.WithStack(err)
	}

	stored, err := hasher.Register(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(output{Hash: stored.Hash, Salt: stored.Salt}))
}

func readInput(in *os.File, prompt io.Writer, interactive bool) (string, error) {
	if interactive {
		fmt.Fprint(prompt, "Enter password: ")
		password, err := readPassword(int(in.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}

		return string(password), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
