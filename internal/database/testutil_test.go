package database

import "time"

var testNow = time.Date(2024, time.July, 1, 9, 30, 0, 0, time.UTC)
