package repository

import (
	"context"
	"fmt"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/google/uuid"
)

// PointsRepository is the points ledger. Every grant is keyed by a reason
// string unique per user, so replaying a grant never pays twice.
type PointsRepository struct {
	conn PgConnection
	tx   *TxRunner
}

func NewPointsRepo(conn PgConnection) *PointsRepository {
	mustPing(conn, "pointsRepo")
	return &PointsRepository{
		conn: conn,
		tx:   NewTxRunner(conn),
	}
}

func (pr *PointsRepository) AwardPoints(ctx context.Context, uid uuid.UUID, amount int, reason string) error {
	if amount == 0 {
		return nil
	}
	return pr.tx.WithTx(ctx, func(ctx context.Context) error {
		q := querierFrom(ctx, pr.conn)
		ct, err := q.Exec(ctx, `INSERT INTO points_transactions (user_id, amount, reason) VALUES ($1, $2, $3) `+
			`ON CONFLICT (user_id, reason) DO NOTHING;`, uid, amount, reason)
		if err != nil {
			if isPgCode(err, foreignKeyViolation) {
				return errorvalues.ErrUserNotFound
			}
			return fmt.Errorf("recording points transaction error: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return nil
		}
		ct, err = q.Exec(ctx, `UPDATE users SET total_points = total_points + $1 WHERE id = $2;`, amount, uid)
		if err != nil {
			return fmt.Errorf("adding points error: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrUserNotFound
		}
		return nil
	})
}
