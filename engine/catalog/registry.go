package catalog

import "strings"

// Entities returns the built-in aircraft descriptors in processing order.
func Entities() []EntitySpec {
	return []EntitySpec{P51Mustang(), Spitfire(), MiG29Fulcrum()}
}

// Lookup finds a descriptor by case-insensitive name.
func Lookup(name string) (EntitySpec, bool) {
	for _, e := range Entities() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return EntitySpec{}, false
}

// Names lists the known entity names, for CLI help output.
func Names() []string {
	entities := Entities()
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Name
	}
	return names
}
