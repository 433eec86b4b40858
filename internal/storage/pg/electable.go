package pg

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/esek/ekorre-sub000/internal/domain"
	internal_errors "github.com/esek/ekorre-sub000/internal/errors"
)

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertElectables bulk-inserts (election_id, postname) pairs in one
// statement, so a single invalid postname fails the whole batch.
func insertElectables(e execer, id domain.ElectionId, postnames []domain.Postname) error {
	_, err := e.Exec(
		"INSERT INTO electables(election_id, postname) SELECT $1, unnest($2::text[])",
		id, pq.Array(postnames),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.Server("some postname is already electable in this election")
		}
		if isForeignKeyViolation(err) {
			return internal_errors.Server("some postname does not correspond to an existing post")
		}
		return fmt.Errorf("failed to insert electables: %w", err)
	}
	return nil
}

func (s *Storage) AddElectables(id domain.ElectionId, postnames []domain.Postname) error {
	return insertElectables(s.db, id, postnames)
}

func (s *Storage) RemoveElectables(id domain.ElectionId, postnames []domain.Postname) error {
	result, err := s.db.Exec(
		"DELETE FROM electables WHERE election_id = $1 AND postname = ANY($2)",
		id, pq.Array(postnames),
	)
	if err != nil {
		return fmt.Errorf("failed to delete electables: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected != int64(len(postnames)) {
		return internal_errors.Server(fmt.Sprintf("removed %d of %d electables", affected, len(postnames)))
	}
	return nil
}

// SetElectables replaces the whole electable set. An empty list clears it.
func (s *Storage) SetElectables(id domain.ElectionId, postnames []domain.Postname) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM electables WHERE election_id = $1", id); err != nil {
		return fmt.Errorf("failed to clear electables: %w", err)
	}
	if len(postnames) > 0 {
		if err := insertElectables(tx, id, postnames); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) GetElectables(id domain.ElectionId) ([]domain.Postname, error) {
	rows, err := s.db.Query("SELECT postname FROM electables WHERE election_id = $1 ORDER BY postname", id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch electables: %w", err)
	}
	defer rows.Close()

	var postnames []domain.Postname
	for rows.Next() {
		var p domain.Postname
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan electable: %w", err)
		}
		postnames = append(postnames, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return postnames, nil
}
