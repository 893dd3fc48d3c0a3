package entity

type Admin struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	MobileNumber string `db:"mobile_number"`
	PasswordHash string `db:"password"`
}
