package reservation

import "github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"

// DBExecutor интерфейс работы с БД, общий для *sql.DB и обёртки с метриками
type DBExecutor = dbmetrics.DBExecutor
