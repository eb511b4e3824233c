package auth

import (
	"strconv"
	"strings"
)

// PolicyService manages user permissions for the bot.
type PolicyService struct {
	adminUserIDs   map[int64]bool
	allowedUserIDs map[int64]bool // if empty, all users are allowed
}

// NewPolicyService creates a new PolicyService from comma-separated ID
// lists. Unparsable entries are skipped.
func NewPolicyService(adminUserIDsStr, allowedUserIDsStr string) *PolicyService {
	return &PolicyService{
		adminUserIDs:   parseIDList(adminUserIDsStr),
		allowedUserIDs: parseIDList(allowedUserIDsStr),
	}
}

func parseIDList(s string) map[int64]bool {
	ids := make(map[int64]bool)
	if s == "" {
		return ids
	}
	for _, idStr := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err == nil {
			ids[id] = true
		}
	}
	return ids
}

// IsAdmin checks if a user is an admin.
func (p *PolicyService) IsAdmin(userID int64) bool {
	return p.adminUserIDs[userID]
}

// IsAllowed checks if a user may issue commands. An empty allowed list
// admits everyone; admins are always allowed.
func (p *PolicyService) IsAllowed(userID int64) bool {
	if len(p.allowedUserIDs) == 0 {
		return true
	}
	return p.allowedUserIDs[userID] || p.adminUserIDs[userID]
}
