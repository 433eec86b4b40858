package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/esek/ekorre-sub000/internal/domain"
	internal_errors "github.com/esek/ekorre-sub000/internal/errors"
)

// CreateNominations records one nomination per postname with the default
// unanswered state. Postnames already nominated for this user are skipped
// without touching their answer; an invalid user or non-electable post fails
// the whole statement, so no partial batch is ever visible.
func (s *Storage) CreateNominations(id domain.ElectionId, username domain.Username, postnames []domain.Postname) error {
	_, err := s.db.Exec(`
        INSERT INTO nominations(election_id, username, postname)
        SELECT $1, $2, unnest($3::text[])
        ON CONFLICT (election_id, username, postname) DO NOTHING
    `, id, username, pq.Array(postnames))
	if err != nil {
		if isForeignKeyViolation(err) {
			return internal_errors.Server("nomination references an unknown user or a post that is not electable in this election")
		}
		return fmt.Errorf("failed to insert nominations: %w", err)
	}
	return nil
}

func (s *Storage) UpdateNominationAnswer(id domain.ElectionId, username domain.Username, postname domain.Postname, answer domain.Answer) error {
	result, err := s.db.Exec(`
        UPDATE nominations
        SET answer = $4
        WHERE election_id = $1 AND username = $2 AND postname = $3
    `, id, username, postname, answer)
	if err != nil {
		return fmt.Errorf("failed to update nomination answer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("nomination not found")
	}
	return nil
}

func (s *Storage) GetNominations(id domain.ElectionId, filter domain.NominationFilter) ([]domain.Nomination, error) {
	var pred predicate
	pred.where("election_id = $%d", id)
	if filter.Username != nil {
		pred.where("username = $%d", *filter.Username)
	}
	if filter.Answer != nil {
		pred.where("answer = $%d", *filter.Answer)
	}

	query := "SELECT election_id, username, postname, answer FROM nominations" + pred.clause() + " ORDER BY postname, username"
	rows, err := s.db.Query(query, pred.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nominations: %w", err)
	}
	defer rows.Close()

	var nominations []domain.Nomination
	for rows.Next() {
		var n domain.Nomination
		if err := rows.Scan(&n.ElectionId, &n.Username, &n.Postname, &n.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan nomination: %w", err)
		}
		nominations = append(nominations, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	if len(nominations) == 0 {
		return nil, internal_errors.NotFound("no nominations found")
	}
	return nominations, nil
}

func (s *Storage) CountNominations(id domain.ElectionId, postname *domain.Postname) (int, error) {
	var pred predicate
	pred.where("election_id = $%d", id)
	if postname != nil {
		pred.where("postname = $%d", *postname)
	}

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM nominations"+pred.clause(), pred.args...).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) { // defensive, COUNT always yields a row
			return 0, internal_errors.Server("count query returned no row")
		}
		return 0, fmt.Errorf("failed to count nominations: %w", err)
	}
	return count, nil
}
