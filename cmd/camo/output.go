package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// banner prints a title block, but only for an interactive terminal.
func banner(title string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Printf("\n%s\n", title)
	fmt.Println("=" + strings.Repeat("=", 40))
}

// fileDigest returns the hex SHA-256 of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func printDigest(path string) {
	digest, err := fileDigest(path)
	if err != nil {
		fmt.Printf("   SHA-256: unavailable (%v)\n", err)
		return
	}
	fmt.Printf("   SHA-256: %s\n", digest)
}
