package user

import "time"

type Role string

const (
	RolePersonnel Role = "PERSONNEL"
	RoleAdmin     Role = "ADMIN"
)

// User is a login account. Admin accounts drive payroll actions; personnel
// accounts can only view their own released payslips.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	PersonnelID  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
