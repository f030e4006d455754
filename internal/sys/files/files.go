// Package files provides utilities for working with files/directories.
package files

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrPathNotFound = errors.New("path not found")
	ErrPathEmpty    = errors.New("path is empty")
	ErrFileExists   = errors.New("file already exists")
)

// Permissions used when creating files and directories.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Exists checks if a file exists.
func Exists(s string) bool {
	_, err := os.Stat(s)
	return !os.IsNotExist(err)
}

// IsDir checks if the path exists and is a directory.
func IsDir(s string) bool {
	fi, err := os.Stat(s)
	if err != nil {
		return false
	}

	return fi.IsDir()
}

// mkdir creates a new directory at the specified path.
func mkdir(s string) error {
	if Exists(s) {
		return nil
	}

	slog.Debug("creating path", "path", s)
	if err := os.MkdirAll(s, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", s, err)
	}

	return nil
}

// MkdirAll creates all the given paths.
func MkdirAll(s ...string) error {
	for _, path := range s {
		if err := mkdir(path); err != nil {
			return err
		}
	}

	return nil
}

// ReadString returns the content of the file at s.
func ReadString(s string) (string, error) {
	b, err := os.ReadFile(s)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", s, err)
	}

	return string(b), nil
}

// WriteString writes content to s in a single write, replacing any previous
// content.
func WriteString(s, content string) error {
	slog.Debug("writing file", "path", s, "bytes", len(content))
	if err := os.WriteFile(s, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %q: %w", s, err)
	}

	return nil
}

// Touch creates a file at this given path.
// If the file already exists, the function succeeds when existOK is true.
func Touch(s string, existOK bool) (*os.File, error) {
	if Exists(s) && !existOK {
		return nil, fmt.Errorf("%w: %q", ErrFileExists, s)
	}

	f, err := os.Create(s)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}

	return f, nil
}

// ExpandHomeDir expands a leading "~/" to the user's home directory.
func ExpandHomeDir(s string) string {
	if strings.HasPrefix(s, "~/") {
		dirname, _ := os.UserHomeDir()
		s = filepath.Join(dirname, s[2:])
	}

	return s
}

// EnsureSuffix appends the specified suffix to the filename.
func EnsureSuffix(s, suffix string) string {
	if strings.HasSuffix(s, suffix) {
		return s
	}

	return s + suffix
}

// YamlWrite marshals v and writes it to p.
func YamlWrite[T any](p string, v *T, force bool) error {
	f, err := Touch(p, force)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("closing file", "path", p, "error", err)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling YAML: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	slog.Debug("yaml file written", "path", p)

	return nil
}

// YamlRead unmarshals the YAML file at p into v.
func YamlRead[T any](p string, v *T) error {
	if !Exists(p) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}

	content, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	if err := yaml.Unmarshal(content, v); err != nil {
		return fmt.Errorf("error unmarshalling YAML: %w", err)
	}
	slog.Debug("yaml file read", "path", p)

	return nil
}
