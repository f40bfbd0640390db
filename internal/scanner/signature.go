package scanner

import (
	"strings"

	"github.com/toyz/ipcgen/internal/models"
)

// ParseParams splits raw parameter text into ordered name/type pairs.
// Entries are separated on top-level commas only; no bracket-depth tracking
// is performed, so generic type arguments containing commas split naively.
// An entry that does not split on its first colon into exactly two non-empty
// parts is dropped silently.
func ParseParams(raw string) []models.Parameter {
	var params []models.Parameter

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, typ, found := strings.Cut(entry, ":")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		typ = strings.TrimSpace(typ)
		if name == "" || typ == "" {
			continue
		}

		params = append(params, models.Parameter{Name: name, Type: typ})
	}

	return params
}

// RenderParams derives the two strings the emitter uses verbatim: the
// comma-joined "name: type" definition list and the comma-joined bare-name
// list, both in declaration order.
func RenderParams(params []models.Parameter) (paramDefs, paramNames string) {
	defs := make([]string, 0, len(params))
	names := make([]string, 0, len(params))

	for _, param := range params {
		defs = append(defs, param.Name+": "+param.Type)
		names = append(names, param.Name)
	}

	return strings.Join(defs, ", "), strings.Join(names, ", ")
}
