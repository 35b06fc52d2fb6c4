// Package handler contains the HTTP handlers for the Yookve API.
//
// Handlers decode requests, call the corresponding service and encode
// the response. Error mapping is centralized in MapServiceError so
// every endpoint returns the same {"success": false, "message": ...}
// shape with a consistent status code.
//
// Response conventions follow the web client: catalog and booking
// endpoints return bare entities and arrays, while auth, preference
// and saved-package endpoints wrap their payload in a success
// envelope.
package handler
