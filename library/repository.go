package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	dataFileName  = "library.dat"
	backupDirName = "backups"
	backupSuffix  = ".backup"

	// maxBackups is how many timestamped backups survive a successful
	// save; older ones are pruned.
	maxBackups = 5
)

// Repository persists the library state to a data directory: a single
// live data file plus a backups subdirectory of timestamp-suffixed
// copies of prior live files.
type Repository struct {
	dir          string
	backupOnSave bool
}

// NewRepository returns a repository rooted at dir. The directory is
// created lazily on the first save.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir, backupOnSave: true}
}

// SetBackupOnSave controls whether Save backs up the previous live
// file before replacing it. On by default; explicit CreateBackup calls
// are unaffected.
func (r *Repository) SetBackupOnSave(enabled bool) {
	r.backupOnSave = enabled
}

// Dir returns the data directory root.
func (r *Repository) Dir() string {
	return r.dir
}

// DataFilePath returns the path of the live data file.
func (r *Repository) DataFilePath() string {
	return filepath.Join(r.dir, dataFileName)
}

func (r *Repository) backupDir() string {
	return filepath.Join(r.dir, backupDirName)
}

// Exists reports whether a live data file has been committed.
func (r *Repository) Exists() bool {
	_, err := os.Stat(r.DataFilePath())
	return err == nil
}

// Save commits the state to the live data file. The sequence is: back
// up the current live file (unless disabled via SetBackupOnSave),
// write the full state to a temporary file, re-open and fully re-parse
// the temporary file to validate it, then atomically rename it over
// the live file and prune old backups. Any failure before the rename
// removes the temporary file and leaves the previously committed live
// file byte-for-byte unchanged.
func (r *Repository) Save(st *State) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if r.backupOnSave && r.Exists() {
		if _, err := r.writeBackup(); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	tmp, err := os.CreateTemp(r.dir, dataFileName+".tmp")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	name := tmp.Name()

	err = writeState(tmp, st)
	if closeErr := tmp.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		// Validate the written file end to end before committing.
		_, err = readStateFile(name)
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write data file: %w", err)
	}

	if err := os.Rename(name, r.DataFilePath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("replace data file: %w", err)
	}

	// The rename has committed the new live file; a failed prune must
	// not turn the successful save into an error.
	_ = r.pruneBackups()
	return nil
}

// Load reads the live data file. A missing file yields a fresh empty
// state. When the live file fails to read or validate, backups are
// tried newest-first; the first one that parses is promoted to replace
// the live file and returned. When every backup also fails, Load
// returns an error wrapping ErrRecoveryExhausted.
func (r *Repository) Load() (*State, error) {
	st, err := readStateFile(r.DataFilePath())
	if err == nil {
		return st, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return NewState(), nil
	}

	recovered, recoverErr := r.recoverFromBackups()
	if recoverErr != nil {
		return nil, errors.Join(fmt.Errorf("load data file: %w", err), recoverErr)
	}
	return recovered, nil
}

// CreateBackup copies the live data file into the backup directory.
func (r *Repository) CreateBackup() error {
	if !r.Exists() {
		return ErrNoDataFile
	}
	if _, err := r.writeBackup(); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	return nil
}

// BackupCount returns the number of backups currently on disk.
func (r *Repository) BackupCount() int {
	backups, err := r.listBackups()
	if err != nil {
		return 0
	}
	return len(backups)
}

// DeleteAll removes the live data file and every backup.
func (r *Repository) DeleteAll() error {
	if err := os.Remove(r.DataFilePath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete data file: %w", err)
	}
	backups, err := r.listBackups()
	if err != nil {
		return err
	}
	for _, backup := range backups {
		if err := os.Remove(backup.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete backup: %w", err)
		}
	}
	return nil
}

// recoverFromBackups tries each backup newest-first and promotes the
// first one that parses to be the live file.
func (r *Repository) recoverFromBackups() (*State, error) {
	backups, err := r.listBackups()
	if err != nil {
		return nil, err
	}

	var attempts []error
	for _, backup := range backups {
		st, err := readStateFile(backup.path)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", filepath.Base(backup.path), err))
			continue
		}
		if err := copyFile(backup.path, r.DataFilePath()); err != nil {
			return nil, fmt.Errorf("restore backup: %w", err)
		}
		return st, nil
	}

	if len(attempts) == 0 {
		return nil, fmt.Errorf("%w: no backups available", ErrRecoveryExhausted)
	}
	return nil, fmt.Errorf("%w: %w", ErrRecoveryExhausted, errors.Join(attempts...))
}

// writeBackup copies the live data file to a timestamp-suffixed backup.
// A numeric suffix is appended when two saves land in the same second.
func (r *Repository) writeBackup() (string, error) {
	if err := os.MkdirAll(r.backupDir(), 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	base := dataFileName + backupSuffix + "_" + timestamp
	path := filepath.Join(r.backupDir(), base)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		path = filepath.Join(r.backupDir(), fmt.Sprintf("%s_%d", base, i))
	}

	if err := copyFile(r.DataFilePath(), path); err != nil {
		return "", err
	}
	return path, nil
}

// pruneBackups keeps only the maxBackups most recently modified
// backups.
func (r *Repository) pruneBackups() error {
	backups, err := r.listBackups()
	if err != nil {
		return err
	}
	for i := maxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete old backup: %w", err)
		}
	}
	return nil
}

type backupFile struct {
	path    string
	modTime time.Time
}

// listBackups returns backups sorted newest-first by modification
// time.
func (r *Repository) listBackups() ([]backupFile, error) {
	entries, err := os.ReadDir(r.backupDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}

	var backups []backupFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), dataFileName+backupSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backupFile{
			path:    filepath.Join(r.backupDir(), entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].modTime.Equal(backups[j].modTime) {
			return backups[i].modTime.After(backups[j].modTime)
		}
		return backups[i].path > backups[j].path
	})
	return backups, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(src), err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(dst), err)
	}
	return nil
}
