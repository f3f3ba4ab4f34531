package util

import "os"

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// EnsureDirs creates every directory in paths, stopping at the first failure.
func EnsureDirs(paths ...string) error {
	for _, p := range paths {
		if err := EnsureDir(p); err != nil {
			return err
		}
	}
	return nil
}
