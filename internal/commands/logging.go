package commands

import (
	"strings"

	"github.com/goliatone/go-markdown2html/internal/logging"
	"github.com/goliatone/go-markdown2html/pkg/interfaces"
)

// CommandLogger returns a logger for the named command module, tagged so all
// command executions can be filtered together.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.WithFields(logging.CommandsLogger(provider), map[string]any{
		"component":      "command",
		"command_module": name,
	})
	return logger
}
