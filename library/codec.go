package library

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// FormatMagic is the 4-byte token identifying the curio data file
	// format ("Curio LIBrary").
	FormatMagic = "CLIB"

	// FormatVersion is the current data file format version. Files
	// written by a newer version are rejected on load.
	FormatVersion = 1
)

// writeState writes the versioned binary container: the magic token,
// a big-endian int32 format version, then the JSON-encoded aggregate.
func writeState(w io.Writer, st *State) error {
	if _, err := w.Write([]byte(FormatMagic)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, int32(FormatVersion)); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// readState reads and validates a versioned binary container.
func readState(r io.Reader) (*State, error) {
	magic := make([]byte, len(FormatMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != FormatMagic {
		return nil, fmt.Errorf("%w: got %q", ErrBadMagic, string(magic))
	}

	var version int32
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version > FormatVersion {
		return nil, fmt.Errorf("%w: file version %d, supported up to %d",
			ErrUnsupportedVersion, version, FormatVersion)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	st := NewState()
	if err := json.Unmarshal(payload, st); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	st.normalize()
	return st, nil
}

// readStateFile opens and fully parses a data file. A missing file is
// reported as os.ErrNotExist so callers can distinguish it from
// corruption.
func readStateFile(path string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := readState(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return st, nil
}
