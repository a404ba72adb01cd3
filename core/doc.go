// Package core implements actor addressing for the swarm runtime.
//
// An ID names an actor, or one sub-actor in a swarm, by four small tags:
// type, machine, version and sub-actor slot. Reserved maximum values of the
// machine and slot tags turn an ID into a local or global broadcast address.
// IDs are plain values, safe to copy across goroutines and usable as map keys.
package core
