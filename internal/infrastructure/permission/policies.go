package permission

import (
	"fmt"

	"github.com/estately/estately/internal/shared/authorization"
)

var defaultPolicies = [][]string{
	{string(authorization.RoleAdmin), "/api/v1/admin/*", "(GET)|(POST)|(PUT)|(PATCH)|(DELETE)"},
}

// SeedDefaultPolicies grants admins the admin API. Existing rows are kept.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("default permissions seeded", "count", added)
	}
	return nil
}
