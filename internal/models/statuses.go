package models

type UserRole string
type MediaType string
type ContactStatus string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleInstructor UserRole = "INSTRUCTOR"
	UserRoleStudent    UserRole = "STUDENT"

	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"

	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusResolved   ContactStatus = "RESOLVED"
)

// ValidUserRole проверяет, что роль входит в закрытый набор
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleInstructor, UserRoleStudent:
		return true
	}
	return false
}

// ValidMediaType проверяет тип медиа
func ValidMediaType(t MediaType) bool {
	return t == MediaTypeImage || t == MediaTypeVideo
}

// ValidContactStatus проверяет статус обращения
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved:
		return true
	}
	return false
}
