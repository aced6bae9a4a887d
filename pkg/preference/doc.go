// Package preference owns the per-user, per-notification-type, per-channel
// enablement matrix. Stored rows are user overrides layered on a
// compiled-in default matrix; a missing row means "use the default", never
// "disabled", and resolved results always cover the full type x channel
// cross product so UI consumers never see gaps.
package preference
