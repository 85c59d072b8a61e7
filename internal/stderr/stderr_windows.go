//go:build windows

package stderr

// Start is a no-op on Windows; its audio backend does not write to fd 2.
func Start() error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
