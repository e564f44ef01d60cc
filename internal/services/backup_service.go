package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/barakatna/platform/backend/internal/config"
	"github.com/barakatna/platform/backend/internal/logger"
	"github.com/barakatna/platform/backend/internal/metrics"
	"github.com/barakatna/platform/backend/internal/models"
)

var ErrInvalidBackupName = errors.New("invalid backup filename")

const backupPrefix = "barakatna-"

// BackupInfo describes one backup file on disk.
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService copies the sqlite database into the backup directory and
// restores from those copies. Filenames are validated strictly since they
// arrive from URL parameters.
type BackupService struct {
	cfg      *config.Config
	notifier *NotificationService
	cron     *cron.Cron
}

func NewBackupService(cfg *config.Config, notifier *NotificationService) *BackupService {
	return &BackupService{cfg: cfg, notifier: notifier}
}

// CreateBackup copies the live database file and returns the new filename.
func (s *BackupService) CreateBackup() (string, error) {
	filename := fmt.Sprintf("%s%s.db", backupPrefix, time.Now().Format("20060102-150405"))
	dst := filepath.Join(s.cfg.BackupDir, filename)

	if err := copyFile(s.cfg.DatabasePath, dst); err != nil {
		metrics.IncBackup("error")
		if s.notifier != nil {
			s.notifier.Notify(models.NotificationTypeError, "backup", "Backup failed", err.Error())
		}
		return "", fmt.Errorf("create backup: %w", err)
	}

	metrics.IncBackup("ok")
	return filename, nil
}

// ListBackups returns the backups on disk, newest first.
func (s *BackupService) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.cfg.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Filename:  entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// GetBackupPath validates a filename and returns its absolute path.
func (s *BackupService) GetBackupPath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) ||
		strings.Contains(filename, "..") || !strings.HasPrefix(filename, backupPrefix) {
		return "", ErrInvalidBackupName
	}
	return filepath.Join(s.cfg.BackupDir, filename), nil
}

func (s *BackupService) DeleteBackup(filename string) error {
	path, err := s.GetBackupPath(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// RestoreBackup replaces the live database file with a backup copy. The
// caller is expected to restart the process afterwards.
func (s *BackupService) RestoreBackup(filename string) error {
	path, err := s.GetBackupPath(filename)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if err := copyFile(path, s.cfg.DatabasePath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	return nil
}

// StartSchedule runs a nightly backup at 03:00. Returns the started cron so
// the caller can stop it on shutdown.
func (s *BackupService) StartSchedule() (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		filename, err := s.CreateBackup()
		if err != nil {
			logger.Log().WithError(err).Error("Scheduled backup failed")
			return
		}
		logger.WithFields(map[string]interface{}{"filename": filename}).Info("Scheduled backup created")
	})
	if err != nil {
		return nil, fmt.Errorf("schedule backup: %w", err)
	}
	c.Start()
	s.cron = c
	return c, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
