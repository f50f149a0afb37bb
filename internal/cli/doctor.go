package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/unrot/unrot/internal/backup"
	"github.com/unrot/unrot/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running workspace checks...")
	failed := 0

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  [fail] store: %s not found (run 'unrot init')\n", path)
		failed++
	} else {
		fmt.Printf("  [ok]   store: %s\n", path)
	}

	snap, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("  [fail] snapshot: %v\n", err)
		failed++
	} else {
		result := validation.New().ValidateSnapshot(snap)
		if result.HasConflicts() {
			fmt.Printf("  [fail] snapshot: %d conflict(s), run 'unrot validate' for details\n", len(result.Conflicts))
			failed++
		} else {
			fmt.Printf("  [ok]   snapshot: %d tasks, %d habits, %d ledger entries\n",
				len(snap.Tasks), len(snap.Habits), len(snap.History))
		}
	}

	backups, err := backup.NewManager(path).ListBackups()
	switch {
	case err != nil:
		fmt.Printf("  [fail] backups: %v\n", err)
		failed++
	case len(backups) == 0:
		fmt.Println("  [warn] backups: none yet, run 'unrot backup create'")
	case time.Since(backups[0].Timestamp) > 7*24*time.Hour:
		fmt.Printf("  [warn] backups: latest is from %s\n", backups[0].Timestamp.Format("2006-01-02"))
	default:
		fmt.Printf("  [ok]   backups: %d, latest %s\n", len(backups), backups[0].Timestamp.Format("2006-01-02"))
	}

	if others, err := findOtherInstances(); err == nil && len(others) > 0 {
		fmt.Printf("  [warn] processes: %d other unrot instance(s) running\n", len(others))
	} else {
		fmt.Println("  [ok]   processes: no other instances")
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println("All checks passed.")
	return nil
}

// findOtherInstances scans the process table for other unrot processes.
// Concurrent writers race on the snapshot file, so a second instance is
// worth flagging.
func findOtherInstances() ([]ps.Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	exe := filepath.Base(os.Args[0])
	var others []ps.Process
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.EqualFold(p.Executable(), exe) {
			others = append(others, p)
		}
	}
	return others, nil
}
