package models

import "time"

var testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
