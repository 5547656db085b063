package repository

import (
	"context"

	"hotel-booking-core/internal/domain/surcharge"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"

	"github.com/google/uuid"
)

type SurchargeRepository struct {
	db db.DBTX
}

func NewSurchargeRepository(dbtx db.DBTX) *SurchargeRepository {
	return &SurchargeRepository{db: dbtx}
}

func (r *SurchargeRepository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*surcharge.Rule, error) {
	const query = `
		SELECT id, room_id, surcharge_type, label, min_age, max_age, amount,
		       is_per_night, applies_to_room, applies_to_combo, is_mandatory,
		       sort_order, active
		FROM surcharge_rules
		WHERE room_id = $1 AND active
		ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list surcharge rules", err)
	}
	defer rows.Close()

	var rules []*surcharge.Rule
	for rows.Next() {
		var rule surcharge.Rule
		var ruleType string
		if err := rows.Scan(
			&rule.ID, &rule.RoomID, &ruleType, &rule.Label, &rule.MinAge, &rule.MaxAge,
			&rule.Amount, &rule.PerNight, &rule.AppliesRoom, &rule.AppliesCombo,
			&rule.Mandatory, &rule.SortOrder, &rule.Active,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan surcharge rule", err)
		}
		rule.Type = surcharge.Type(ruleType)
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate surcharge rules", err)
	}
	return rules, nil
}
