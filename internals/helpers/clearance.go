// file: internals/helpers/clearance.go
package helper

// Role numbers double as clearance levels and the direction is easy to get
// backwards, so both comparisons live here under explicit names instead of
// ad hoc <=/>= checks per query.
//
// Convention: LOWER role number = HIGHER privilege (admin is 1). A row's
// access_level is the largest (least privileged) role number still allowed
// to see it.

// HasClearance reports whether a caller with callerRoleNum may perform an
// operation gated at requiredLevel.
func HasClearance(callerRoleNum, requiredLevel int) bool {
	return callerRoleNum <= requiredLevel
}

// RowVisible reports whether a row with the given access_level is visible to
// a caller with callerRoleNum. Mirrors the SQL filter access_level >= role.
func RowVisible(rowAccessLevel, callerRoleNum int) bool {
	return rowAccessLevel >= callerRoleNum
}
