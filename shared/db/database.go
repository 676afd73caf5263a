package db

import (
	"database/sql"
)

// Database abstracts the embedded store's lifecycle: connect once at process
// start, share the handle across repositories, close on shutdown.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
