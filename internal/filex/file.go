// Package filex has small filesystem helpers used by the CLI.
package filex

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
)

// sniffLen is how much content http.DetectContentType looks at.
const sniffLen = 512

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// Describe stats the file at path and returns it as an upload candidate.
// The MIME type comes from the extension and falls back to content
// sniffing; parameters such as charset are dropped. Content is opened
// lazily through UploadedFile.Open.
func Describe(path string) (models.UploadedFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return models.UploadedFile{}, fmt.Errorf("%s is a directory", path)
	}

	mt, err := detectType(path)
	if err != nil {
		return models.UploadedFile{}, err
	}

	return models.UploadedFile{
		Name:     fi.Name(),
		Size:     fi.Size(),
		MimeType: mt,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

func detectType(path string) (string, error) {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); mt != "" {
		return stripParams(mt), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if n == 0 {
		return "", nil
	}
	return stripParams(http.DetectContentType(buf[:n])), nil
}

func stripParams(mt string) string {
	base, _, _ := strings.Cut(mt, ";")
	return strings.TrimSpace(base)
}
