// Package storage keeps solved puzzles in a Redis cache backed by
// a Postgres database, so repeat requests for the same puzzle are
// answered without re-solving.
package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/Groberts93/sudoku-solver/dbprep"
	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"
)

// Connect makes sure the database schema is in place, then opens
// the cache and database connections.  It returns identifiers for
// both connections for logging.
func Connect() (cacheId, databaseId string, err error) {
	if err = dbprep.EnsureData(); err != nil {
		err = fmt.Errorf("Couldn't initialize database: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		rdClose()
		return
	}
	return
}

// Close shuts down both connections.  Safe to call when Connect
// failed or was never called.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the current Redis connection.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex and
// connection.  Because Redis connections can go away without
// warning, the connection is pinged first and reopened if the
// ping fails.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("No cache connection; call Connect first")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("Failed to reconnect to cache at %q: %v", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/sudoku?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: Open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect() (string, error) {
	cfg, err := pgx.ParseURI(pgUrl)
	if err != nil {
		return "", fmt.Errorf("Parse failure on Postgres URI %q: %v", pgUrl, err)
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to db at %q: %v", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the current Postgres connection.
func pgClose() {
	if pgConn != nil {
		pgConn.Close()
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out the transaction is rolled back, otherwise
// it's committed.
func pgExecute(body func(tx *pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("No database connection; call Connect first")
	}
	tx, err := pgConn.Begin()
	if err != nil {
		return fmt.Errorf("Can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
