package archiver

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/docker/go-units"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// DirectoryError is returned when the folder to archive is missing or is not a directory.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to check results folder (%s): %s", e.Path, e.Err)
	}
	return fmt.Sprintf("results folder not found at %s", e.Path)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// Summary describes a created archive.
type Summary struct {
	Path      string
	FileCount int
	Size      int64
}

type entry struct {
	path         string
	relativePath string
	info         fs.FileInfo
}

// Archiver ...
type Archiver struct {
	pathChecker pathutil.PathChecker
	fileManager fileutil.FileManager
	logger      log.Logger
}

// New ...
func New(pathChecker pathutil.PathChecker, fileManager fileutil.FileManager, logger log.Logger) Archiver {
	return Archiver{
		pathChecker: pathChecker,
		fileManager: fileManager,
		logger:      logger,
	}
}

// Archive zips every regular file under folder into destination. Entry names are
// slash separated paths relative to folder. Directories and symlinks are skipped.
// A symlinked folder is followed. An existing destination is overwritten.
func (a Archiver) Archive(folder, destination string) (Summary, error) {
	root := folder
	if resolved, err := filepath.EvalSymlinks(folder); err == nil {
		root = resolved
	}

	isDir, err := a.pathChecker.IsDirExists(root)
	if err != nil {
		return Summary{}, &DirectoryError{Path: folder, Err: err}
	}
	if !isDir {
		return Summary{}, &DirectoryError{Path: folder}
	}

	entries, err := collectEntries(root)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to list files in %s", folder)
	}

	archiveFile, err := os.Create(destination)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to create archive %s", destination)
	}
	defer func() {
		if err := archiveFile.Close(); err != nil {
			a.logger.Warnf("Failed to close archive: %s", err)
		}
	}()

	zipWriter := zip.NewWriter(archiveFile)
	for _, e := range entries {
		a.logger.Debugf("Adding %s", e.relativePath)

		if err := a.writeEntry(zipWriter, e); err != nil {
			return Summary{}, err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return Summary{}, errors.Wrap(err, "failed to finish archive")
	}

	info, err := archiveFile.Stat()
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to get file info for %s", destination)
	}

	a.logger.Printf("Zipped %s to %s (%d files, %s)", folder, destination, len(entries), units.HumanSize(float64(info.Size())))

	return Summary{
		Path:      destination,
		FileCount: len(entries),
		Size:      info.Size(),
	}, nil
}

func (a Archiver) writeEntry(zipWriter *zip.Writer, e entry) error {
	header, err := zip.FileInfoHeader(e.info)
	if err != nil {
		return errors.Wrapf(err, "failed to create zip header for %s", e.path)
	}
	header.Name = e.relativePath
	header.Method = zip.Deflate

	w, err := zipWriter.CreateHeader(header)
	if err != nil {
		return errors.Wrapf(err, "failed to add %s to archive", e.relativePath)
	}

	source, err := a.fileManager.Open(e.path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", e.path)
	}
	defer func() {
		if err := source.Close(); err != nil {
			a.logger.Warnf("Failed to close file: %s", err)
		}
	}()

	if _, err := io.Copy(w, source); err != nil {
		return errors.Wrapf(err, "failed to compress %s", e.path)
	}

	return nil
}

func collectEntries(dir string) ([]entry, error) {
	var entries []entry

	fn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		relativePath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		entries = append(entries, entry{
			path:         path,
			relativePath: filepath.ToSlash(relativePath),
			info:         info,
		})

		return nil
	}
	if err := filepath.WalkDir(dir, fn); err != nil {
		return nil, err
	}

	return entries, nil
}
