package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/esek/ekorre-sub000/internal/domain"
	internal_errors "github.com/esek/ekorre-sub000/internal/errors"
)

// CreateElection inserts a new election together with its electable set in a
// single transaction. The most recently created election must already be
// closed; a partial unique index on unclosed elections backs this check
// against concurrent creators.
func (s *Storage) CreateElection(data domain.ElectionCreationData) (domain.ElectionId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var closedAt sql.NullTime
	err = tx.QueryRow("SELECT closed_at FROM elections ORDER BY created_at DESC LIMIT 1").Scan(&closedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("failed to check latest election: %w", err)
	}
	if err == nil && !closedAt.Valid {
		return uuid.Nil, internal_errors.Conflict("an election is open or pending closure")
	}

	id := uuid.New()
	_, err = tx.Exec(
		"INSERT INTO elections(id, creator, nominations_hidden) VALUES($1, $2, $3)",
		id, data.Creator, data.NominationsHidden,
	)
	if err != nil {
		if isUniqueViolation(err) { // lost the race against a concurrent creator
			return uuid.Nil, internal_errors.Conflict("an election is open or pending closure")
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, internal_errors.Server("creator does not exist")
		}
		return uuid.Nil, fmt.Errorf("failed to insert election: %w", err)
	}

	if len(data.ElectablePostnames) > 0 {
		if err := insertElectables(tx, id, data.ElectablePostnames); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// OpenElection flips an election to open. The WHERE guard is the concurrency
// control: of any number of concurrent attempts exactly one affects a row.
func (s *Storage) OpenElection(id domain.ElectionId) error {
	result, err := s.db.Exec(`
        UPDATE elections
        SET open = TRUE, opened_at = NOW()
        WHERE id = $1 AND NOT open AND closed_at IS NULL
    `, id)
	if err != nil {
		return fmt.Errorf("failed to open election: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.Conflict("election is already open, already closed or does not exist")
	}
	return nil
}

// CloseElection closes whatever election is open. More than one affected row
// means the single-open invariant was already violated; the update stands but
// the caller is alerted.
func (s *Storage) CloseElection() error {
	result, err := s.db.Exec("UPDATE elections SET open = FALSE, closed_at = NOW() WHERE open")
	if err != nil {
		return fmt.Errorf("failed to close election: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.Conflict("no open election")
	}
	if affected > 1 {
		return internal_errors.Server(fmt.Sprintf("%d elections were open simultaneously", affected))
	}
	return nil
}

const electionColumns = "id, creator, created_at, nominations_hidden, open, opened_at, closed_at"

func (s *Storage) GetElection(id domain.ElectionId) (domain.Election, error) {
	row := s.db.QueryRow("SELECT "+electionColumns+" FROM elections WHERE id = $1", id)
	return scanElection(row, "election not found")
}

func (s *Storage) GetLatestElection() (domain.Election, error) {
	row := s.db.QueryRow("SELECT " + electionColumns + " FROM elections ORDER BY created_at DESC LIMIT 1")
	return scanElection(row, "no elections exist")
}

func (s *Storage) GetOpenElection() (domain.Election, error) {
	row := s.db.QueryRow("SELECT " + electionColumns + " FROM elections WHERE open ORDER BY created_at DESC LIMIT 1")
	return scanElection(row, "no open election")
}

func scanElection(row *sql.Row, notFoundMsg string) (domain.Election, error) {
	var e domain.Election
	var openedAt, closedAt sql.NullTime
	err := row.Scan(&e.Id, &e.Creator, &e.CreatedAt, &e.NominationsHidden, &e.Open, &openedAt, &closedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Election{}, internal_errors.NotFound(notFoundMsg)
		}
		return domain.Election{}, fmt.Errorf("failed to scan election: %w", err)
	}
	if openedAt.Valid {
		e.OpenedAt = &openedAt.Time
	}
	if closedAt.Valid {
		e.ClosedAt = &closedAt.Time
	}
	return e, nil
}
