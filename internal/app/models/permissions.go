package models

// Permission is one entry of the permission list the backend attaches to a
// login response. Route gating and conditional dashboard loads use these.
type Permission string

const (
	PermMyClassesView   Permission = "mis-clases:ver"
	PermCalendarView    Permission = "agendamientos:ver:calendario"
	PermBookingsViewAll Permission = "agendamientos:ver:todos"
	PermUsersRead       Permission = "usuarios:leer"
	PermClassesCreate   Permission = "clases:crear"
)

// PermissionSet answers membership queries over a user's permission list
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the backend's string list
func NewPermissionSet(perms []string) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[Permission(p)] = struct{}{}
	}
	return set
}

// Has reports whether the permission is granted
func (s PermissionSet) Has(perm Permission) bool {
	_, ok := s[perm]
	return ok
}

// Strings returns the permissions as a plain string slice, for claims
func (s PermissionSet) Strings() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, string(p))
	}
	return out
}
