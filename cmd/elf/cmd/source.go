package cmd

import "os"

// readSource reads a .santa source file verbatim; CR-stripping to keep
// newlines LF-only happens inside the lexer (spec.md §6).
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
