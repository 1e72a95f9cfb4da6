package model

import "time"

// User mirrors the 'users' table.  A user is created once at registration
// and never mutated by this service.  The Password field always holds a
// bcrypt hash, never the plaintext credential.  Email uniqueness is
// enforced by the store.
//
// Fields:
//  ID        – primary key identifier (users.user_id).
//  FullName  – display name, also matched on login.
//  Email     – unique login identifier.
//  Password  – bcrypt hash of the password.
//  Phone     – number SMS confirmations are sent to.
//  DOB       – optional date of birth.
//  Gender    – optional gender.
//  CreatedAt – creation timestamp.
type User struct {
	ID        uint64    // users.user_id
	FullName  string    // users.full_name
	Email     string    // users.email
	Password  string    // users.password (bcrypt hash)
	Phone     string    // users.phone
	DOB       *string   // users.dob (nullable)
	Gender    *string   // users.gender (nullable)
	CreatedAt time.Time // users.created_at
}
