package ground

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroundBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

var operatingHoursColumns = []string{
	"id",
	"ground_id",
	"venue_id",
	"day_of_week",
	"open_time",
	"close_time",
}

// Repository репозиторий площадок и их расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Ground, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"name",
		"is_active",
		"price_2hr",
		"price_3hr",
	).
		From("grounds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.Ground
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&g.ID,
		&g.VenueID,
		&g.Name,
		&g.IsActive,
		&g.Price2Hr,
		&g.Price3Hr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGroundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan ground: %v", ErrScanRow, err)
	}

	return &g, nil
}

// GetVenueOwnerID получает ID владельца заведения
func (r *Repository) GetVenueOwnerID(ctx context.Context, venueID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("owner_id").
		From("venues").
		Where(squirrel.Eq{"id": venueID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetVenueOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	var ownerID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrVenueNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetVenueOwnerID - scan owner: %v", ErrScanRow, err)
	}

	return ownerID, nil
}

// GetOperatingHoursByGround получает расписание, заданное для самой площадки
func (r *Repository) GetOperatingHoursByGround(ctx context.Context, groundID int64) ([]domain.OperatingWindow, error) {
	return r.selectOperatingHours(ctx, "GetOperatingHoursByGround", squirrel.Eq{"ground_id": groundID})
}

// GetOperatingHoursByVenue получает общее расписание площадки-владельца (ground_id IS NULL)
func (r *Repository) GetOperatingHoursByVenue(ctx context.Context, venueID int64) ([]domain.OperatingWindow, error) {
	return r.selectOperatingHours(ctx, "GetOperatingHoursByVenue", squirrel.And{
		squirrel.Eq{"venue_id": venueID},
		squirrel.Eq{"ground_id": nil},
	})
}

// GetEffectiveOperatingHours получает расписание с учетом иерархии:
// 1. Расписание площадки (ground_id)
// 2. Общее расписание заведения (venue_id, ground_id IS NULL)
// Пустой результат означает, что расписание не задано.
func (r *Repository) GetEffectiveOperatingHours(ctx context.Context, g *domain.Ground) ([]domain.OperatingWindow, error) {
	windows, err := r.GetOperatingHoursByGround(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if len(windows) > 0 || g.VenueID == 0 {
		return windows, nil
	}

	return r.GetOperatingHoursByVenue(ctx, g.VenueID)
}

func (r *Repository) selectOperatingHours(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(operatingHoursColumns...).
		From("operating_hours").
		Where(where).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]domain.OperatingWindow, 0)
	for rows.Next() {
		var (
			w                   domain.OperatingWindow
			groundID, venueID   sql.NullInt64
			dayOfWeek           int
			openTime, closeTime types.TimeString
		)

		if err := rows.Scan(&w.ID, &groundID, &venueID, &dayOfWeek, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		if w.OpenMinute, err = openTime.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: %s - open_time: %v", ErrScanRow, op, err)
		}
		if w.CloseMinute, err = closeTime.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: %s - close_time: %v", ErrScanRow, op, err)
		}

		w.DayOfWeek = time.Weekday(dayOfWeek)
		if groundID.Valid {
			w.GroundID = &groundID.Int64
		}
		if venueID.Valid {
			w.VenueID = &venueID.Int64
		}

		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}
