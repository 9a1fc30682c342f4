//go:build windows

package scanner

func newPlatformScanner(r Runner) Scanner {
	return &netstatScanner{run: r}
}
