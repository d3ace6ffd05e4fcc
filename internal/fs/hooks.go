package fs

import (
	"errors"
	"os"
)

// Hooks used for testing (overridable)
var (
	readFile   = readMapped
	writeFile  = os.WriteFile
	stat       = os.Stat
	readDir    = os.ReadDir
	remove     = os.Remove
	rename     = os.Rename
	createTemp = os.CreateTemp
	mkdirAll   = os.MkdirAll
	isNotExist = func(err error) bool { return errors.Is(err, os.ErrNotExist) }
)

var exists = func(path string) bool {
	_, err := stat(path)
	return err == nil
}

var isDir = func(path string) bool {
	fi, err := stat(path)
	return err == nil && fi.IsDir()
}


// getters and setters for test override
func GetReadFile() func(string) ([]byte, error)  { return readFile }
func SetReadFile(f func(string) ([]byte, error)) { readFile = f }
func GetWriteFile() func(string, []byte, os.FileMode) error {
	return writeFile
}
func SetWriteFile(f func(string, []byte, os.FileMode) error) {
	writeFile = f
}
func GetStat() func(string) (os.FileInfo, error)  { return stat }
func SetStat(f func(string) (os.FileInfo, error)) { stat = f }
func GetRename() func(string, string) error       { return rename }
func SetRename(f func(string, string) error)      { rename = f }
func GetRemove() func(string) error               { return remove }
func SetRemove(f func(string) error)              { remove = f }
