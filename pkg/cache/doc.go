// Package cache provides a generic LRU used to bound per-user resource
// maps, such as the realtime hub's broadcaster registry.
package cache
