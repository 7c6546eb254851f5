package tabs

import (
	"github.com/storefront-admin/storefront-admin/internal/settings"
	"github.com/storefront-admin/storefront-admin/internal/settings/form"
)

// Backup holds the automatic backup settings.
type Backup struct {
	autoBackup *form.Checkbox
	backupDir  *form.TextInput
}

// NewBackup creates the Backup tab seeded from m.
func NewBackup(m settings.Model) *Backup {
	return &Backup{
		autoBackup: form.NewBool(settings.KeyAutoBackupDaily, "Daily auto-backup", m.AutoBackupDaily),
		backupDir:  form.NewText(settings.KeyBackupDir, "Backup directory", m.BackupDir),
	}
}

// Name implements Tab.
func (t *Backup) Name() string { return "backup" }

// Title implements Tab.
func (t *Backup) Title() string { return "Backup & Data" }

// Controls implements Tab.
func (t *Backup) Controls() []form.Control {
	return []form.Control{t.autoBackup, t.backupDir}
}

// Collect implements Tab.
func (t *Backup) Collect(m settings.Model) settings.Model {
	m.AutoBackupDaily = t.autoBackup.Value()
	m.BackupDir = t.backupDir.Value()

	return m
}

// Apply implements Tab.
func (t *Backup) Apply(m settings.Model) {
	t.autoBackup.Set(m.AutoBackupDaily)
	t.backupDir.Set(m.BackupDir)
}
