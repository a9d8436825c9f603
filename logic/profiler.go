package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"lamia/shared"
)

const profilerStartDelaySec = 10
const profilerLoopSec = 60

type IProfiler interface {
}

// Periodically dumps goroutine profiles for post-mortem digging, and prunes
// old dumps. Disabled when no profile_dir is configured.
type profiler struct {
	logger          shared.ILogger
	profileDir      string
	profileKeepDays int
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	prof := profiler{logger, cfg.ProfileDir, cfg.ProfileKeepDays}
	if prof.profileDir != "" {
		go func() {
			time.Sleep(profilerStartDelaySec * time.Second)
			prof.profilerLoop()
		}()
	}
	return &prof
}

func saveProfile(profileDir string) error {
	ts := time.Now().Format("2006-01-02!15-04-05")
	fname := fmt.Sprintf("%v.txt", ts)
	profPath := filepath.Join(profileDir, fname)
	f, err := os.Create(profPath)
	if err != nil {
		return err
	}
	defer f.Close()

	numGoroutine := runtime.NumGoroutine()
	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", numGoroutine); err != nil {
		return err
	}

	if err = pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		return err
	}
	return nil
}

func purgeOld(profileDir string, retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) profilerLoop() {
	for {
		if err := saveProfile(prof.profileDir); err != nil {
			prof.logger.Warnf("Failed to save goroutine profile: %v", err)
		}
		if err := purgeOld(prof.profileDir, prof.profileKeepDays); err != nil {
			prof.logger.Warnf("Failed to purge old goroutine profiles: %v", err)
		}
		time.Sleep(profilerLoopSec * time.Second)
	}
}
