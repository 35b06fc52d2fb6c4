// Package repository implements data access for the Yookve API.
//
// A single generic Repository[T] provides the CRUD contract shared by all
// entities (get by id, get all, create with generated id, partial update,
// delete, filtered search). Per-entity repositories embed it and add the
// specialized lookups their services need: users by username or email,
// preferences and bookings by owner ordered most recent first, packages by
// category or matching interests.
//
// Repositories translate between store documents (map[string]interface{})
// and model entities. Absence is not an error: GetByID and Update report a
// found flag, Delete reports whether a document was removed.
package repository
