package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/esek/ekorre-sub000/internal/domain"
	internal_errors "github.com/esek/ekorre-sub000/internal/errors"
)

// CreateProposal inserts unconditionally: the nominating committee may
// propose the same candidate for the same post several times.
func (s *Storage) CreateProposal(id domain.ElectionId, username domain.Username, postname domain.Postname) error {
	_, err := s.db.Exec(
		"INSERT INTO proposals(election_id, username, postname) VALUES($1, $2, $3)",
		id, username, postname,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return internal_errors.Server("proposal references an unknown election, user or post")
		}
		return fmt.Errorf("failed to insert proposal: %w", err)
	}
	return nil
}

func (s *Storage) DeleteProposal(id domain.ElectionId, username domain.Username, postname domain.Postname) error {
	result, err := s.db.Exec(
		"DELETE FROM proposals WHERE election_id = $1 AND username = $2 AND postname = $3",
		id, username, postname,
	)
	if err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.Server("no matching proposal to remove")
	}
	return nil
}

func (s *Storage) GetProposals(id domain.ElectionId) ([]domain.Proposal, error) {
	rows, err := s.db.Query(
		"SELECT election_id, username, postname FROM proposals WHERE election_id = $1 ORDER BY postname, username",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch proposals: %w", err)
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		var p domain.Proposal
		if err := rows.Scan(&p.ElectionId, &p.Username, &p.Postname); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(proposals) == 0 {
		return nil, internal_errors.NotFound("no proposals found")
	}
	return proposals, nil
}

func (s *Storage) CountProposals(id domain.ElectionId, postname *domain.Postname) (int, error) {
	var pred predicate
	pred.where("election_id = $%d", id)
	if postname != nil {
		pred.where("postname = $%d", *postname)
	}

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM proposals"+pred.clause(), pred.args...).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) { // defensive, COUNT always yields a row
			return 0, internal_errors.Server("count query returned no row")
		}
		return 0, fmt.Errorf("failed to count proposals: %w", err)
	}
	return count, nil
}
