package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"
)

/*

solve records

*/

// A SolveRecord is the stored form of one solved puzzle.  It is
// JSON serializable so it can go into the cache as well as the
// database.
type SolveRecord struct {
	PuzzleId string    // signature of the givens
	Givens   string    // the 81-character input
	Solution string    // the 81-character solved grid
	Passes   int       // propagation passes the solve took
	Created  time.Time // when the solve was first stored
}

// PuzzleId computes the signature under which a puzzle's solution
// is stored: the hex form of the SHA-256 of its givens string.
func PuzzleId(givens string) string {
	sum := sha256.Sum256([]byte(givens))
	return hex.EncodeToString(sum[:])
}

// key: compute the cache key for a SolveRecord.
func (sr *SolveRecord) key() string {
	return "SOL:" + sr.PuzzleId
}

// LookupSolution finds the stored solution for a puzzle, if there
// is one.  It checks the cache first, then the database, caching
// the record again on a database hit.
func LookupSolution(givens string) (*SolveRecord, bool, error) {
	sr := &SolveRecord{PuzzleId: PuzzleId(givens)}
	found, err := sr.cacheLoad()
	if err != nil {
		return nil, false, err
	}
	if found {
		return sr, true, nil
	}
	found, err = sr.databaseLoad()
	if err != nil || !found {
		return nil, false, err
	}
	if err := sr.cacheInsert(); err != nil {
		return nil, false, err
	}
	return sr, true, nil
}

// SaveSolution stores a solve record in both the database and the
// cache.  Saving the same puzzle again is harmless; the original
// record wins.
func SaveSolution(sr *SolveRecord) error {
	if sr.Created.IsZero() {
		sr.Created = time.Now()
	}
	if err := sr.databaseInsert(); err != nil {
		return err
	}
	return sr.cacheInsert()
}

// cacheLoad: load an already cached solve record.  Returns
// whether the record was found in the cache.
func (sr *SolveRecord) cacheLoad() (bool, error) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", sr.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solve record %q: %v", sr.PuzzleId, err)
		}
		return
	})
	if err != nil {
		return false, err
	}
	if len(bytes) == 0 {
		return false, nil
	}
	var cached SolveRecord
	if err := json.Unmarshal(bytes, &cached); err != nil {
		return false, fmt.Errorf("Failed to unmarshal solve record %q: %v", sr.PuzzleId, err)
	}
	if cached.PuzzleId != sr.PuzzleId {
		return false, fmt.Errorf("Cached solve record (id: %q) found for puzzle %q",
			cached.PuzzleId, sr.PuzzleId)
	}
	*sr = cached
	return true, nil
}

// cacheInsert: insert a solve record into the cache.  Replaces
// any existing record with the same id.
func (sr *SolveRecord) cacheInsert() error {
	bytes, err := json.Marshal(sr)
	if err != nil {
		return fmt.Errorf("Failed to marshal solve record %q: %v", sr.PuzzleId, err)
	}
	return rdExecute(func(conn redis.Conn) (err error) {
		_, err = conn.Do("SET", sr.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solve record %q: %v", sr.PuzzleId, err)
		}
		return
	})
}

// databaseLoad: load a solve record from the database.  Returns
// whether a record with the given id was found.
func (sr *SolveRecord) databaseLoad() (bool, error) {
	found := false
	err := pgExecute(func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT givens, solution, passes, created FROM solutions "+
				"WHERE puzzleId = $1", sr.PuzzleId)
		err := row.Scan(&sr.Givens, &sr.Solution, &sr.Passes, &sr.Created)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", sr.PuzzleId, err)
		}
		found = true
		return nil
	})
	return found, err
}

// databaseInsert: insert a solve record into the database,
// keeping the existing record if the puzzle was already stored.
func (sr *SolveRecord) databaseInsert() error {
	return pgExecute(func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO solutions (puzzleId, givens, solution, passes, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
			sr.PuzzleId, sr.Givens, sr.Solution, sr.Passes, sr.Created)
		if err != nil {
			err = fmt.Errorf("Database error saving solve record %q: %v", sr.PuzzleId, err)
		}
		return
	})
}
