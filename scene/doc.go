// Package scene defines the contract between the text pipeline and the host
// scene graph.
//
// A Node holds named objects identified by Handle values. The pipeline only
// ever attaches and detaches; what a node does with an object (keep it in
// memory, upload it to a GPU, hand it to a host engine) is up to the node.
//
// Group is a thread-safe in-memory Node, suitable for tests, previews and
// hosts that poll their children.
package scene
