// Package security provides authorization and access control.
package security

// Permission names as they appear in token claims and role tables.
type Permission string

const (
	CanReadDefault    Permission = "CAN_READ_DEFAULT"
	CanReadMasterData Permission = "CAN_READ_STAMMDATEN"
	CanReadSystemData Permission = "CAN_READ_SYSTEMDATEN"

	CanModifyMasterData Permission = "CAN_MODIFY_STAMMDATEN"
	CanDeleteMasterData Permission = "CAN_DELETE_STAMMDATEN"
	CanModifySystemData Permission = "CAN_MODIFY_SYSTEMDATEN"

	CanCreateTeam   Permission = "CAN_CREATE_MANNSCHAFT"
	CanModifyTeam   Permission = "CAN_MODIFY_MANNSCHAFT"
	CanModifyMember Permission = "CAN_MODIFY_DSBMITGLIEDER"
	CanModifyClub   Permission = "CAN_MODIFY_VEREINE"
	CanModifyEvent  Permission = "CAN_MODIFY_VERANSTALTUNG"
	CanModifyScores Permission = "CAN_MODIFY_WETTKAMPF"

	// CanModifyMyClub is the scoped counterpart of the team, member and club
	// permissions: it only applies to resources of the caller's own club.
	CanModifyMyClub Permission = "CAN_MODIFY_MY_VEREIN"
)

// String implements fmt.Stringer.
func (p Permission) String() string {
	return string(p)
}

// Strings converts permissions for middleware and error details.
func Strings(perms ...Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
