package entity

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered traveller. CreatedAt = tanggal registrasi.
type User struct {
	Base
	FullName     string `db:"full_name"`
	MobileNumber string `db:"mobile_number"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
