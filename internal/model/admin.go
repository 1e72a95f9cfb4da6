package model

// Admin mirrors the 'admins' table.  Admin accounts are provisioned out of
// band; this service only reads them to verify credentials.
type Admin struct {
	ID       uint64 // admins.id
	Username string // admins.username (unique)
	Password string // admins.password (bcrypt hash)
}
