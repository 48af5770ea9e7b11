package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stateWithTitles(titles ...string) *State {
	st := NewState()
	for _, title := range titles {
		st.Items = append(st.Items, Item{ID: strings.ToLower(title), Title: title})
	}
	return st
}

func TestRepositorySaveLoadRoundTrip(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune", "Hyperion")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	st, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Items) != 2 {
		t.Fatalf("loaded %d items, want 2", len(st.Items))
	}
	if st.Items[0].Title != "Dune" || st.Items[1].Title != "Hyperion" {
		t.Errorf("item order not preserved: %v", st.Items)
	}
}

func TestRepositoryLoadMissingFileYieldsEmptyState(t *testing.T) {
	repo := NewRepository(t.TempDir())

	st, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Items) != 0 || len(st.Tasks) != 0 {
		t.Errorf("expected empty state, got %+v", st)
	}
}

func TestRepositorySaveBacksUpPriorLiveFile(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if got := repo.BackupCount(); got != 0 {
		t.Errorf("backups after first save = %d, want 0", got)
	}

	if err := repo.Save(stateWithTitles("Dune", "Hyperion")); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if got := repo.BackupCount(); got != 1 {
		t.Errorf("backups after second save = %d, want 1", got)
	}
}

func TestRepositorySaveSkipsBackupWhenDisabled(t *testing.T) {
	repo := NewRepository(t.TempDir())
	repo.SetBackupOnSave(false)

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(stateWithTitles("Dune", "Hyperion")); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if got := repo.BackupCount(); got != 0 {
		t.Errorf("backups with on-save disabled = %d, want 0", got)
	}

	// Explicit backups still work.
	if err := repo.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}
	if got := repo.BackupCount(); got != 1 {
		t.Errorf("backups after explicit CreateBackup = %d, want 1", got)
	}
}

func TestRepositorySaveSucceedsWhenPruneFails(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	// A regular file squatting on the backup directory path breaks
	// backup listing, but the first save has no live file to back up,
	// so the failure can only surface in the post-commit prune.
	if err := os.WriteFile(filepath.Join(dir, "backups"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Items) != 1 {
		t.Errorf("loaded %d items, want 1", len(st.Items))
	}
}

func TestRepositoryRecoversFromBackup(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(stateWithTitles("Dune", "Hyperion")); err != nil {
		t.Fatalf("second save: %v", err)
	}
	// Newest backup holds the single-item state; make a fresher one of
	// the two-item live file.
	if err := repo.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	if err := os.WriteFile(repo.DataFilePath(), []byte("garbage"), 0644); err != nil {
		t.Fatalf("corrupt live file: %v", err)
	}

	st, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Items) != 2 {
		t.Fatalf("recovered %d items, want 2 from newest backup", len(st.Items))
	}

	// Recovery promotes the backup, so a plain re-read now succeeds.
	if _, err := readStateFile(repo.DataFilePath()); err != nil {
		t.Errorf("live file not restored: %v", err)
	}
}

func TestRepositoryRecoveryExhaustedWithoutBackups(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := os.MkdirAll(repo.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(repo.DataFilePath(), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Load(); !errors.Is(err, ErrRecoveryExhausted) {
		t.Fatalf("expected ErrRecoveryExhausted, got %v", err)
	}
}

func TestRepositoryRecoveryExhaustedWithCorruptBackups(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	if err := os.WriteFile(repo.DataFilePath(), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	backupDir := filepath.Join(repo.Dir(), "backups")
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if err := os.WriteFile(filepath.Join(backupDir, entry.Name()), []byte("garbage"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := repo.Load(); !errors.Is(err, ErrRecoveryExhausted) {
		t.Fatalf("expected ErrRecoveryExhausted, got %v", err)
	}
}

func TestRepositoryPrunesOldBackups(t *testing.T) {
	repo := NewRepository(t.TempDir())

	for i := 0; i < maxBackups+4; i++ {
		if err := repo.Save(stateWithTitles("Dune")); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if got := repo.BackupCount(); got != maxBackups {
		t.Fatalf("BackupCount = %d, want %d", got, maxBackups)
	}
}

func TestRepositoryFailedSaveLeavesLiveFileIntact(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, err := os.ReadFile(repo.DataFilePath())
	if err != nil {
		t.Fatal(err)
	}

	// A regular file squatting on the backup directory path makes the
	// backup step fail before anything is written.
	if err := os.WriteFile(filepath.Join(repo.Dir(), "backups"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(stateWithTitles("Dune", "Hyperion")); err == nil {
		t.Fatal("expected save to fail")
	}

	after, err := os.ReadFile(repo.DataFilePath())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed save altered the live file")
	}

	entries, err := os.ReadDir(repo.Dir())
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestRepositoryCreateBackupWithoutDataFile(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.CreateBackup(); !errors.Is(err, ErrNoDataFile) {
		t.Fatalf("expected ErrNoDataFile, got %v", err)
	}
}

func TestRepositoryDeleteAll(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(stateWithTitles("Dune")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if repo.Exists() {
		t.Error("data file survived DeleteAll")
	}
	if got := repo.BackupCount(); got != 0 {
		t.Errorf("BackupCount after DeleteAll = %d, want 0", got)
	}
}
