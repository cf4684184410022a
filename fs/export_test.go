package fs

import "os"

// NewLogWithStat creates a Log whose size checks in Append go through stat.
func NewLogWithStat(baseDir string, stat func(name string) (os.FileInfo, error)) *Log {
	return &Log{baseDir: baseDir, stat: stat}
}
