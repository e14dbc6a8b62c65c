package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/EpicMandM/lhms/internal/models"
	"golang.org/x/crypto/blake2b"
)

// BackupResult describes a completed backup.
type BackupResult struct {
	Path     string
	Bytes    int
	Checksum string
}

// SnapshotFile writes the register to a comma separated text file, shows it
// back verbatim and rotates it into timestamped backups. Nothing is ever
// parsed back into the register.
type SnapshotFile struct {
	cfg    StorageConfig
	now    func() time.Time
	logger *logger.Logger
}

func NewSnapshotFile(cfg StorageConfig, log *logger.Logger) *SnapshotFile {
	return NewSnapshotFileWithClock(cfg, log, time.Now)
}

// NewSnapshotFileWithClock is NewSnapshotFile with a deterministic clock for
// backup names.
func NewSnapshotFileWithClock(cfg StorageConfig, log *logger.Logger, now func() time.Time) *SnapshotFile {
	if log == nil {
		log = logger.Discard()
	}
	return &SnapshotFile{
		cfg:    cfg,
		now:    now,
		logger: log,
	}
}

func (f *SnapshotFile) Path() string {
	return f.cfg.DataFile()
}

// FormatSnapshot renders one line per room:
// room_no,type,features,status,customer-or-None. Fields are not escaped.
func FormatSnapshot(rooms []*models.Room) string {
	var b strings.Builder
	for _, room := range rooms {
		b.WriteString(strings.Join([]string{
			room.Number,
			room.Type,
			room.Features,
			room.Status.String(),
			room.CustomerOrNone(),
		}, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// SaveSnapshot overwrites the data file with the given rooms.
func (f *SnapshotFile) SaveSnapshot(rooms []*models.Room) error {
	path := f.Path()
	if err := f.cfg.ensureDataDir(); err != nil {
		return f.ioFailure("save_snapshot", path, err)
	}
	data := FormatSnapshot(rooms)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return f.ioFailure("save_snapshot", path, err)
	}
	f.logger.Info("Snapshot saved", logger.Action("save_snapshot"), logger.Path(path), logger.Count(len(rooms)))
	return nil
}

// ReadSnapshot returns the raw content of the data file, or ErrNoDataFile if
// it has not been written.
func (f *SnapshotFile) ReadSnapshot() (string, error) {
	path := f.Path()
	if err := f.checkExists(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", f.ioFailure("read_snapshot", path, err)
	}
	f.logger.Debug("Snapshot read", logger.Action("read_snapshot"), logger.Path(path), logger.Bytes(len(data)))
	return string(data), nil
}

// BackupAndClear appends the data file to a timestamped backup file and then
// truncates the data file. A failure part way through is not rolled back.
func (f *SnapshotFile) BackupAndClear() (*BackupResult, error) {
	path := f.Path()
	if err := f.checkExists(path); err != nil {
		return nil, err
	}

	backupPath := f.cfg.BackupFile(f.now())
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, f.ioFailure("backup", path, err)
	}
	if err := appendFile(backupPath, data); err != nil {
		return nil, f.ioFailure("backup", backupPath, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return nil, f.ioFailure("clear", path, err)
	}

	sum := blake2b.Sum256(data)
	result := &BackupResult{
		Path:     backupPath,
		Bytes:    len(data),
		Checksum: hex.EncodeToString(sum[:]),
	}
	f.logger.Info("Snapshot backed up and cleared",
		logger.Action("backup"),
		logger.Path(backupPath),
		logger.Bytes(result.Bytes),
		logger.F("BLAKE2B", result.Checksum))
	return result, nil
}

func (f *SnapshotFile) checkExists(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("Data file missing", logger.Path(path))
		return fmt.Errorf("%s: %w", path, ErrNoDataFile)
	}
	if err != nil {
		return f.ioFailure("stat", path, err)
	}
	return nil
}

func (f *SnapshotFile) ioFailure(action, path string, err error) error {
	f.logger.Error("Snapshot file operation failed", logger.Action(action), logger.Path(path), logger.Error(err))
	return fmt.Errorf("%w: %s %s: %w", ErrIOFailure, action, path, err)
}

func appendFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		if cerr := file.Close(); cerr != nil {
			return errors.Join(err, cerr)
		}
		return err
	}
	return file.Close()
}
