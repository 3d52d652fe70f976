package domain

import "fmt"

// DatabaseProfile is a named PostgreSQL connection profile.
type DatabaseProfile struct {
	Name     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (p DatabaseProfile) String() string {
	return fmt.Sprintf("%s@%s:%d/%s", p.User, p.Host, p.Port, p.DBName)
}
