package dto

import (
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// StatementParams are the statement query parameters. From/To are
// parsed by the handler; To is inclusive.
type StatementParams struct {
	EntityKind domain.EntityKind  `form:"entityKind" binding:"required,oneof=customer supplier"`
	EntityID   string             `form:"entityID" binding:"required"`
	From       string             `form:"from"`
	To         string             `form:"to"`
	Type       domain.PostingType `form:"type" binding:"omitempty,oneof=all opening_balance journal receipt invoice return purchase payment"`
}

// StatementResponse wraps the computed statement with the entity's
// display fields. Entity is null when the id no longer resolves; the
// statement itself is still returned for audit.
type StatementResponse struct {
	Entity *EntityRef `json:"entity"`
	domain.Statement
}
