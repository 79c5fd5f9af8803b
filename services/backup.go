package services

// MaxBackupScenarios caps the usage-watts table. Adding a sixth scenario is
// rejected, not truncated.
const MaxBackupScenarios = 5

// CalcBackupWatts estimates the usable backup capacity of a battery bank:
// the raw watt-hour figure (AH x count x 10) derated by a flat 3%.
func CalcBackupWatts(batteryAH float64, batteryCount int) float64 {
	return RoundMoney(batteryAH * float64(batteryCount) * 10 * 0.97)
}

// CalcBackupHours returns the runtime for one usage scenario, guarding the
// zero-load case.
func CalcBackupHours(backupWatts, usageWatts float64) float64 {
	if usageWatts == 0 {
		return 0
	}
	return backupWatts / usageWatts
}

// recalcBackupWatts re-applies the formula after a battery spec change.
// A manual backup-watts override is discarded here: once the inputs change,
// the formula is trusted again.
func recalcBackupWatts(b *BatteryConfig) {
	b.Backup.BackupWatts = CalcBackupWatts(b.BatteryAH, b.BatteryCount)
	b.Backup.ManuallyEdited = false
	recalcBackupHours(b)
}

// recalcBackupHours re-derives every scenario's hours from the current
// backup watts, keeping the two lists aligned 1:1.
func recalcBackupHours(b *BatteryConfig) {
	if len(b.Backup.BackupHours) != len(b.Backup.UsageWatts) {
		b.Backup.BackupHours = make([]float64, len(b.Backup.UsageWatts))
	}
	for i, usage := range b.Backup.UsageWatts {
		b.Backup.BackupHours[i] = CalcBackupHours(b.Backup.BackupWatts, usage)
	}
}
