// Package transfer moves the ledger in and out of JSON files on disk.
package transfer

import (
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"luhi_tools/internal/ledger"
)

// ExportFileName is the name every export is written under.
const ExportFileName = "time_data.json"

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Export writes the ledger document to dir/time_data.json and returns the
// path written.
func Export(l *ledger.Ledger, dir string) (string, error) {
	data, err := l.Export()
	if err != nil {
		return "", fmt.Errorf("failed to encode months: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	log.Info().Str("path", path).Int("bytes", len(data)).Msg("exported months")
	return path, nil
}

// ImportFile reads the whole file and replaces the ledger with its months.
// No extension check is done here; the picker only hints at .json files.
func ImportFile(l *ledger.Ledger, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	n, err := l.Import(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("import rejected")
		return 0, err
	}
	log.Info().Str("path", path).Int("months", n).Msg("imported months")
	return n, nil
}

// AcceptDrop reports whether a dropped file may be handed to the parser.
// Only .json names, or names whose extension maps to application/json, pass.
func AcceptDrop(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return nil
	}
	if ext != "" {
		if t, _, err := mime.ParseMediaType(mime.TypeByExtension(ext)); err == nil && t == "application/json" {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a JSON file", ErrUnsupportedFileType, filepath.Base(path))
}

// ImportDrop imports a file that was dropped onto the application.
func ImportDrop(l *ledger.Ledger, path string) (int, error) {
	if err := AcceptDrop(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("drop rejected")
		return 0, err
	}
	return ImportFile(l, path)
}

// CleanDroppedPath turns the text a terminal pastes for a dropped file into
// a filesystem path.
func CleanDroppedPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = s[1 : len(s)-1]
		}
	}
	if strings.HasPrefix(s, "file://") {
		if u, err := url.Parse(s); err == nil {
			s = u.Path
		}
	}
	return strings.ReplaceAll(s, `\ `, " ")
}
