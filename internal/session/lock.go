package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrLocked means another interactive session holds the lockfile.
var ErrLocked = errors.New("another hurryup session is already running")

// Lock is the single-session lockfile. It holds the owning process id.
type Lock struct {
	path string
	pid  int
}

// AcquireLock writes the lockfile in dir. A lockfile left by a process that
// is gone, or that is not hurryup, is treated as stale and replaced.
func AcquireLock(dir string) (*Lock, error) {
	path := filepath.Join(dir, constants.SessionLockfileName)
	pid := getpidFunc()

	if content, err := os.ReadFile(path); err == nil {
		holder, alive := lockHolder(content)
		if alive && holder != pid {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder)
		}
		logger.Debug("replacing stale lockfile", "path", path, "pid", holder)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path, pid: pid}, nil
}

// Release removes the lockfile if this process still owns it.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if holder, _ := strconv.Atoi(strings.TrimSpace(string(content))); holder != l.pid {
		return nil
	}
	return os.Remove(l.path)
}

func lockHolder(content []byte) (int, bool) {
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, false
	}
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return pid, false
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return pid, false
	}
	return pid, true
}
