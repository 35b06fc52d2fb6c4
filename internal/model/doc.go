// Package model defines the domain entities of the Yookve API.
//
// Entities mirror the JSON documents kept in the store: users, travel
// preferences, travel packages, bookings and saved packages. Field names
// follow the wire format consumed by the web client (userId, packageId,
// paymentStatus, ...), so entities marshal directly into API responses.
//
// Every persisted entity implements the Entity interface, which is the
// single serialization point between domain types and store documents.
//
// The package also defines APIError, the error shape every endpoint
// returns on failure: an HTTP status plus a {"success": false,
// "message": ...} body.
package model
