package booking

import "github.com/glowdesk/booking-service/pkg/dbmetrics"

// DBExecutor минимальный интерфейс БД, нужный репозиторию.
// Ему удовлетворяют *sql.DB, *sql.Tx и dbmetrics.DB.
type DBExecutor = dbmetrics.Executor
