package blockedslot

import "github.com/m04kA/SMC-GroundBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
