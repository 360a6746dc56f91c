// Package system reads Raspberry Pi health state for the check command:
// CPU temperature, disk headroom for the show library, and throttling.
package system

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Health is a point-in-time snapshot of the appliance.
type Health struct {
	CPUTempC      float64   `json:"cpu_temp_c"`
	DiskUsedPct   float64   `json:"disk_used_pct"`
	DiskFreeBytes uint64    `json:"disk_free_bytes"`
	Throttled     bool      `json:"throttled"`
	Timestamp     time.Time `json:"timestamp"`
}

// CPUTemp reads the SoC thermal zone in degrees Celsius.
func CPUTemp() (float64, error) {
	data, err := os.ReadFile("/sys/class/thermal/thermal_zone0/temp")
	if err != nil {
		return 0, fmt.Errorf("read cpu temp: %w", err)
	}

	milliC, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse cpu temp: %w", err)
	}
	return milliC / 1000.0, nil
}

// DiskUsage returns usage percentage and free bytes for the filesystem
// holding the given path.
func DiskUsage(path string) (usedPct float64, freeBytes uint64, err error) {
	if path == "" {
		path = "/"
	}

	out, err := exec.Command("df", "--output=pcent,avail", "-B1", path).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("df failed: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return 0, 0, fmt.Errorf("unexpected df output")
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("unexpected df fields")
	}

	pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "%"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse disk pct: %w", err)
	}
	free, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse disk free: %w", err)
	}
	return pct, free, nil
}

// Throttled reports whether the firmware is throttling the SoC for
// thermal or power reasons.
func Throttled() (bool, error) {
	out, err := exec.Command("vcgencmd", "get_throttled").Output()
	if err != nil {
		return false, fmt.Errorf("vcgencmd failed: %w", err)
	}

	// Output format: throttled=0x0
	parts := strings.SplitN(strings.TrimSpace(string(out)), "=", 2)
	if len(parts) < 2 {
		return false, fmt.Errorf("unexpected vcgencmd output")
	}
	val, err := strconv.ParseUint(strings.TrimPrefix(parts[1], "0x"), 16, 64)
	if err != nil {
		return false, fmt.Errorf("parse throttle value: %w", err)
	}
	return val != 0, nil
}

// Snapshot gathers a full health reading, logging and zeroing any
// probe that fails rather than aborting the check.
func Snapshot(dataDir string) Health {
	h := Health{Timestamp: time.Now()}

	if temp, err := CPUTemp(); err == nil {
		h.CPUTempC = temp
	} else {
		log.Printf("[system] temp read error: %v", err)
	}

	if pct, free, err := DiskUsage(dataDir); err == nil {
		h.DiskUsedPct = pct
		h.DiskFreeBytes = free
	} else {
		log.Printf("[system] disk read error: %v", err)
	}

	if throttled, err := Throttled(); err == nil {
		h.Throttled = throttled
	} else {
		log.Printf("[system] throttle check error: %v", err)
	}

	return h
}

// EnsureDir creates a directory and all parents if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
