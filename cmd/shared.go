package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gnomegl/pwncheck/pkg/fileutil"
)

func ValidateInputFile(inputPath string) error {
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("input file '%s' not found", inputPath)
	}
	if fileutil.IsDirectory(inputPath) {
		return fmt.Errorf("input path '%s' is a directory, expected a password file", inputPath)
	}
	return nil
}

func EnsureExportDirectory(exportPath string) error {
	if err := fileutil.EnsureDirectoryExists(filepath.Dir(exportPath)); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}
