// Package keystore reads and writes the console pre-shared key on disk.
//
// The on-disk format is the standard base64 key encoding followed by a
// newline, the same form dnsdist's setKey() accepts. Files are written with
// owner-only permissions.
package keystore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"distconsole/internal/crypto"
	"distconsole/internal/domain"
	"distconsole/internal/util/memzero"
)

// fileMode keeps the key readable by its owner only.
const fileMode = os.FileMode(0o600)

// Save writes key to path via a temp file, then atomically replaces the
// target.
func Save(path string, key domain.Key) error {
	encoded := []byte(crypto.FormatKey(key) + "\n")
	defer memzero.Zero(encoded)
	return writeFile(path, encoded)
}

// Load reads and decodes the key stored at path. Surrounding whitespace is
// tolerated.
func Load(path string) (domain.Key, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Key{}, fmt.Errorf("read key file: %w", err)
	}
	defer memzero.Zero(b)

	key, err := crypto.ParseKey(strings.TrimSpace(string(b)))
	if err != nil {
		return domain.Key{}, fmt.Errorf("key file %s: %w", path, err)
	}
	return key, nil
}

// writeFile writes bytes via a temp file in the target directory, then
// renames into place.
func writeFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
