package command

import (
	"fmt"
	"strings"

	"github.com/BrianKYildirim/key-value-storage/pkg/kv"
)

// Interpreter translates one raw command line into a store operation and
// renders the response text sent back to the client. It holds no state
// between calls, so a single Interpreter is shared by every session.
type Interpreter struct {
	store kv.Store
}

// NewInterpreter creates an Interpreter executing against store.
func NewInterpreter(store kv.Store) *Interpreter {
	return &Interpreter{store: store}
}

// Execute parses and runs one command line, returning the response text.
// Protocol problems (empty line, unknown verb, wrong arity) are normal
// responses here, not errors; the store is not touched for them.
func (in *Interpreter) Execute(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return "ERROR: Empty command\n"
	}
	tokens := strings.Fields(line)

	switch strings.ToUpper(tokens[0]) {
	case "SET":
		if len(tokens) != 3 {
			return "ERROR: SET command requires 2 arguments: key and value\n"
		}
		key, value := tokens[1], tokens[2]
		// The confirmation is returned even when persistence failed
		// underneath; the store logs that case itself.
		_ = in.store.Set(key, value)
		return fmt.Sprintf("Added key '%s' with value '%s'\n", key, value)

	case "GET":
		if len(tokens) != 2 {
			return "ERROR: GET command requires 1 argument: key\n"
		}
		key := tokens[1]
		value, ok := in.store.Get(key)
		if !ok {
			return fmt.Sprintf("Key '%s' not found.", key)
		}
		return value

	case "REMOVE":
		if len(tokens) != 2 {
			return "ERROR: REMOVE command requires 1 argument: key\n"
		}
		key := tokens[1]
		removed, _ := in.store.Delete(key)
		if !removed {
			return fmt.Sprintf("Key '%s' not found.", key)
		}
		return fmt.Sprintf("Removed key '%s'.\n", key)

	case "PRINT":
		entries := in.store.Entries()
		if len(entries) == 0 {
			return "Store is empty.\n"
		}
		var b strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&b, "[KEY]: %s\t[VALUE]: %s\n", e.Key, e.Value)
		}
		return b.String()

	default:
		return fmt.Sprintf("ERROR: Unknown command '%s'\n", tokens[0])
	}
}
