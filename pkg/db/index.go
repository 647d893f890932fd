package db

import "gorm.io/gorm"

// Factory maps a driver name to its dialector, drivers register themselves.
var Factory = map[string]func(string) gorm.Dialector{}
