// Package inventory loads the full device port list that wildcard port
// specifications ("*" / "all") expand against.
//
// The resolver never queries a device for its topology; the inventory is
// plain data the operator points the CLI at. Two file shapes are accepted:
// a YAML or JSON(C) document describing a regular boards × slots grid, or
// an explicit list of port tokens for irregular chassis. JSON files may
// carry comments — they are stripped before parsing, the same treatment
// devcontainer.json gets elsewhere in the ecosystem.
package inventory
