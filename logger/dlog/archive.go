package dlog

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Archiver moves the previous day's log files into a dated directory
// under Dir and truncates the live files. Driven by the cron entry
// Setup registers.
type Archiver struct {
	Dir string
}

func (a *Archiver) Process() {
	Log.Info("Started log archive")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	archiveDir := filepath.Join(a.Dir, yesterday)
	tmp := archiveDir
	counter := 1
	err := os.Mkdir(archiveDir, 0755)
	for os.IsExist(err) {
		archiveDir = tmp + "-" + strconv.Itoa(counter)
		counter++
		err = os.Mkdir(archiveDir, 0755)
	}
	if err != nil {
		Log.Error("Failed to create archive directory", "dir", archiveDir, "err", err)
		return
	}

	entries, err := os.ReadDir(a.Dir)
	if err != nil {
		Log.Error("Failed to read log directory", "dir", a.Dir, "err", err)
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		live := filepath.Join(a.Dir, entry.Name())
		if err := a.archiveFile(live, filepath.Join(archiveDir, entry.Name())); err != nil {
			Log.Error("Failed to archive log", "fileName", entry.Name(), "err", err)
			return
		}
		if err := os.Truncate(live, 0); err != nil {
			Log.Error("Failed to truncate file", "fileName", entry.Name(), "err", err)
			return
		}
		Log.Info("Archived log", "fileName", entry.Name())
	}
}

func (a *Archiver) archiveFile(src, dst string) error {
	in, err := os.OpenFile(src, os.O_RDONLY, 0600)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
