//go:build !windows && !darwin

package scanner

func newPlatformScanner(r Runner) Scanner {
	return &lsofScanner{run: r, ssFallback: true}
}
