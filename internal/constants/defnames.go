// Package constants holds fixed data tables shared across the analysis
// core and its CLI, independent of any single run's configuration.
package constants

// ReceiverMutatorNames lists method names whose invocation on a receiver
// (obj.name(...)) the def/use analyzer treats as unconditionally defining
// obj (DEF), on an exact or prefix match. Mirrors the common Java
// mutator-naming convention (add/remove/set/put/clear/... on collections
// and builders).
var ReceiverMutatorNames = []string{
	"add", "remove", "set", "put", "clear", "insert", "delete", "push", "pop",
	"append", "offer", "poll", "sort", "shuffle", "reverse", "swap", "merge",
	"update", "replace", "assign", "write", "reset",
}

// ReceiverMayMutatorNames lists method names whose invocation on a receiver
// the analyzer treats as possibly defining obj (MAY_DEF): the name pattern
// is mutator-shaped but the call could equally be a pure query (get, load,
// build) depending on overload, which this core cannot resolve without
// full type information.
var ReceiverMayMutatorNames = []string{
	"get", "compute", "notify", "close", "open", "flush", "load", "save",
	"build", "apply", "accept",
}
