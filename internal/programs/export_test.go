package programs

import "fmt"

// UseSequentialIDs makes generated ids predictable ("id-1", "id-2", ...) until
// the returned restore func is called.
func UseSequentialIDs() (restore func()) {
	prev := newID
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return func() {
		newID = prev
	}
}
