package entity

// User is a staff account. The role decides which endpoints the account
// may call; it only changes through the dedicated role-change operation.
type User struct {
	Base
	Name         string   `db:"usr_name"`
	Email        string   `db:"usr_email"`
	PasswordHash string   `db:"usr_pass"`
	Role         UserRole `db:"usr_type"`
	IsActive     bool     `db:"usr_active"`
}
