// Package ruleset defines the declarative rule model: path patterns over a
// configuration tree and the constraints applied at the matched locations.
//
// # Rule Files
//
// Rules are loaded from a YAML or JSON file holding a list of rule entries:
//
//	rules:
//	  - path: port
//	    type: number
//	    required: true
//	    min: 1024
//	    max: 65535
//	  - path: servers[*].name
//	    type: string
//	    minLength: 1
//	    maxLength: 63
//	  - path: mode
//	    enum: [dev, staging, prod]
//
// # Path Patterns
//
// A path pattern is a dotted sequence of segments. A segment is a map key
// (port), a list index (servers[2]), or a wildcard matching every element of
// a list or every value of a map at that position (servers[*].port, *.timeout).
//
// # Construction-Time Validation
//
// New and Load reject malformed rules (empty patterns, inverted bounds, empty
// enums) up front, so a Set handed to the validator is always well-formed.
// Errors for all bad rules are aggregated rather than stopping at the first,
// mirroring how the validator itself reports every violation in one pass.
package ruleset
