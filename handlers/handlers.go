package handlers

import "gorm.io/gorm"

// DBHandler carries the injected database handle and signing secret for
// every route. The handle is opened in main and closed at shutdown.
type DBHandler struct {
	*gorm.DB
	Secret []byte
}
