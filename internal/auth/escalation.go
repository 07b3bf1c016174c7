package auth

import "github.com/spec-kit/showroom-crm/internal/domain"

// NextEscalationLevel returns the level an interaction moves to when escalated
// with perms. The ladder only moves one rung up: sales person to manager needs
// CanEscalateToManager, manager to head office needs CanEscalateToHeadOffice.
// Head office is terminal.
func NextEscalationLevel(current domain.EscalationLevel, perms domain.PermissionSet) (domain.EscalationLevel, bool) {
	switch current {
	case domain.LevelSalesPerson:
		if perms.CanEscalateToManager {
			return domain.LevelShowroomManager, true
		}
	case domain.LevelShowroomManager:
		if perms.CanEscalateToHeadOffice {
			return domain.LevelHeadOffice, true
		}
	}
	return current, false
}
