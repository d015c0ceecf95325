package osu

import "regexp"

// IdentifierType tells the service how to resolve a user identifier.
type IdentifierType string

// Identifier kinds sent as the "type" query parameter.
const (
	IdentifierID     IdentifierType = "id"
	IdentifierString IdentifierType = "string"
)

var numericID = regexp.MustCompile(`^-?[0-9]+$`)

// ClassifyUser reports whether user looks like a numeric user id.
// A signed digit string such as "-5" is still classified as an id.
func ClassifyUser(user string) IdentifierType {
	if numericID.MatchString(user) {
		return IdentifierID
	}
	return IdentifierString
}
