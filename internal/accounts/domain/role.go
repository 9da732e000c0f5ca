package domain

import "log/slog"

// Role is the closed set of roles a session can carry. The label is stored
// free-text in the credential store and parsed on the way out.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

// ParseRole maps a stored role label onto the closed set. Unrecognised labels
// downgrade to RoleAnonymous rather than failing the session; the downgrade is
// logged at error level so it never happens silently.
func ParseRole(label string) Role {
	switch label {
	case "admin":
		return RoleAdmin
	case "anonymous":
		return RoleAnonymous
	default:
		slog.Error("unrecognised role label, downgrading to anonymous", "role", label)
		return RoleAnonymous
	}
}

func (r Role) String() string { return string(r) }
