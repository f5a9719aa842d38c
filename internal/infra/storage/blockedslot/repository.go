package blockedslot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroundBookingService/pkg/psqlbuilder"
)

// Repository репозиторий ручных блокировок площадки (обслуживание, турниры)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByGroundAndDate получает блокировки площадки на дату
func (r *Repository) GetByGroundAndDate(ctx context.Context, groundID int64, date time.Time) ([]domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"ground_id",
		"block_date",
		"start_time",
		"end_time",
		"reason",
	).
		From("blocked_slots").
		Where(squirrel.Eq{
			"ground_id":  groundID,
			"block_date": date.Format(domain.DateFormat),
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroundAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroundAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.BlockedSlot, 0)
	for rows.Next() {
		var b domain.BlockedSlot
		if err := rows.Scan(&b.ID, &b.GroundID, &b.BlockDate, &b.StartTime, &b.EndTime, &b.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetByGroundAndDate - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByGroundAndDate - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
