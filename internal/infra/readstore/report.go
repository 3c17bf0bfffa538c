package readstore

import (
	"context"
	"time"

	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"
)

type RevenueReadStore struct {
	db db.DBTX
}

func NewRevenueReadStore(dbtx db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: dbtx}
}

var _ queries.RevenueViewRepo = (*RevenueReadStore)(nil)

func (r *RevenueReadStore) SumPaymentsByDay(ctx context.Context, from, to time.Time) ([]queries.RevenueRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', received_at)::date AS day,
			count(*) AS payments,
			sum(amount_cents) AS amount_cents
		 FROM booking_payments
		 WHERE received_at >= $1 AND received_at < $2
		 GROUP BY day
		 ORDER BY day`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum payments", err)
	}
	defer rows.Close()

	var result []queries.RevenueRow
	for rows.Next() {
		var row queries.RevenueRow
		if err := rows.Scan(&row.Day, &row.Payments, &row.AmountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue rows", err)
	}
	return result, nil
}
