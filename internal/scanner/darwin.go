//go:build darwin

package scanner

func newPlatformScanner(r Runner) Scanner {
	return &lsofScanner{run: r, fullNames: true}
}
