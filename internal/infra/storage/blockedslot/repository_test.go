package blockedslot

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

func TestRepository_GetByGroundAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(dbmetrics.Wrap(db, nil))

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM blocked_slots WHERE block_date = $1 AND ground_id = $2 ORDER BY start_time ASC")).
		WithArgs("2025-06-01", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ground_id", "block_date", "start_time", "end_time", "reason"}).
			AddRow(int64(1), int64(3), date, "12:00:00", "13:30:00", "maintenance").
			AddRow(int64(2), int64(3), date, "23:00:00", "01:00:00", nil))

	blocks, err := repo.GetByGroundAndDate(context.Background(), 3, date)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, types.TimeString("12:00"), blocks[0].StartTime)
	assert.Equal(t, types.TimeString("13:30"), blocks[0].EndTime)
	require.NotNil(t, blocks[0].Reason)
	assert.Equal(t, "maintenance", *blocks[0].Reason)
	assert.Nil(t, blocks[1].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}
