package system

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/keyring"
)

type DoctorCmd struct {
	SkipProxy bool `help:"Do not contact the text-improvement proxy."`
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	report := func(name string, err error, warnOnly bool) {
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", name)
		case warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	report("Data directory writable", checkDataDir(ctx.Config.DataDir), false)

	storageErr := checkStorage(ctx)
	report("Storage readable", storageErr, false)

	if storageErr == nil {
		report("Backups present", checkBackupsPresent(ctx), true)
	} else {
		fmt.Printf("⊘ Backups present: SKIPPED (storage not readable)\n")
	}

	report("Clock/timezone", checkClockTimezone(), false)

	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		report("OS keyring", fmt.Errorf("not available; set ANTHROPIC_API_KEY for the proxy instead"), true)
	}

	if cmd.SkipProxy {
		fmt.Printf("⊘ Improvement proxy: SKIPPED\n")
	} else {
		report("Improvement proxy", checkProxy(ctx.Config.Improve.URL), true)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func checkStorage(ctx *cli.Context) error {
	_, err := ctx.Session()
	return err
}

func checkBackupsPresent(ctx *cli.Context) error {
	s, err := ctx.Session()
	if err != nil {
		return err
	}
	mgr := s.Backups()
	if mgr == nil {
		return fmt.Errorf("backups are not configured")
	}
	latest, err := mgr.LatestBackup()
	if err != nil {
		return fmt.Errorf("no backups found in %s. Run 'hurryup backup create'", mgr.GetBackupDir())
	}
	if age := time.Since(latest.Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup %s is %d days old", filepath.Base(latest.Path), int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation("Asia/Bangkok"); err != nil {
		return fmt.Errorf("timezone database unavailable: %w", err)
	}
	return nil
}

// checkProxy only verifies that something answers; a preflight is enough.
func checkProxy(url string) error {
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(c, http.MethodOptions, url, nil)
	if err != nil {
		return fmt.Errorf("invalid proxy url %q: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s unreachable. Run 'hurryup proxy serve' to enable text improvement", url)
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%s answered %s", url, resp.Status)
	}
	return nil
}
