package scanner

// Port represents a listening port and its associated process
type Port struct {
	Port    int    `json:"port"`
	PID     int    `json:"pid"`
	Process string `json:"process"`
	User    string `json:"user"`
	Address string `json:"address"`
	Command string `json:"command,omitempty"`
}

// Scanner is the platform capability used by the port operations.
//
// Listeners returns the deduplicated identifiers of every process holding a
// listening TCP socket on port. An empty result is not an error. Kill
// forcibly terminates one process by its platform identifier.
type Scanner interface {
	Scan() ([]Port, error)
	Listeners(port uint16) ([]string, error)
	Kill(pid string) error
}

// New returns a platform-specific scanner
func New() Scanner {
	return newPlatformScanner(ExecRunner{})
}
