// Package email provides the outbound email transport behind the
// notification engine's email channel: a provider-agnostic EmailSender
// contract with Postmark, SMTP and local-development implementations.
//
// Transports only move already-rendered mail; template rendering and
// recipient resolution live with the channel sender in pkg/notifications.
package email
