// Package rules implements the keyword→tag rule engine: parsing rule
// records from CSV or YAML sources, compiling them into an immutable,
// versioned RuleSet with whole-word matchers, and serving snapshots to
// concurrent readers through an atomically swappable Store.
//
// The flow is: a source file yields Records, Parse normalizes them into
// Rules (longest keyword first), NewRuleSet compiles one matcher per
// rule, and Store.Reload publishes the set with a single pointer swap.
// Matching never takes a lock; a reload never invalidates a snapshot
// already held by an in-flight match.
package rules
