// Package conftree provides a generic, immutable representation of parsed
// configuration data.
//
// # Overview
//
// A Value is a tagged variant over the six shapes found in JSON/YAML
// configuration: null, booleans, numbers, strings, lists, and mappings.
// Mappings preserve insertion order so that everything downstream (path
// resolution, violation reporting) is deterministic regardless of how the
// source file was authored.
//
// Values are constructed once by a loader and never mutated; validation runs
// may share a single tree across goroutines without coordination.
//
// # Loading
//
// Load and Parse build a Value from a JSON or YAML document. Both formats go
// through the YAML decoder (JSON is a YAML subset), which exposes document
// order through its node API.
//
//	tree, err := conftree.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port, ok := tree.Get("port")
package conftree
