package params

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/inovacc/linkr/internal/application"
)

var (
	once       sync.Once
	AppdataDir string
)

func init() {
	once.Do(getAppDataDir)
}

func getAppDataDir() {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		panic(err)
	}

	AppdataDir = dir

	if err := os.MkdirAll(AppdataDir, os.ModePerm); err != nil {
		panic(err)
	}
}

// WorkcopyDir returns the directory that holds local working copies.
func WorkcopyDir() string {
	return filepath.Join(AppdataDir, "repos")
}
