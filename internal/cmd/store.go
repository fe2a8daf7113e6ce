package cmd

import (
	"os"
	"path/filepath"

	"github.com/xdg/mergegate/internal/approval"
	"github.com/xdg/mergegate/internal/config"
	"github.com/xdg/mergegate/internal/pathutil"
	"github.com/xdg/mergegate/internal/project"
)

// storePath resolves the approval store location. Precedence: the --store
// flag, then the configured path (file or MERGEGATE_STORE), then the
// project-local default under the nearest project root. Outside any
// project the current directory anchors the default, so the hooks keep
// working instead of erroring out mid-session.
func storePath(eff *config.Effective) string {
	if storeFlag != "" {
		return pathutil.ExpandHome(storeFlag)
	}
	if eff.Store != "" {
		return eff.Store
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		root = cwd
	}
	return filepath.Join(root, config.StoreDirName, config.StoreFileName)
}

// openStore returns the file-backed approval store for this invocation.
func openStore(eff *config.Effective) *approval.FileStore {
	return approval.NewFileStore(storePath(eff))
}
