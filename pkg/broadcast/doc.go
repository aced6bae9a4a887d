// Package broadcast is the realtime push fabric behind the notification
// engine's website and browser channels: typed publish/subscribe with
// non-blocking delivery, an in-memory implementation for single-process
// deployments, a Redis Pub/Sub adapter for multi-instance fan-out, and a
// per-user hub that transport layers subscribe to.
package broadcast
