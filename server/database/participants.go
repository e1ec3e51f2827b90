package database

import (
	"context"
	"fmt"
)

// GetParticipants returns the full current snapshot in import order.
func (d *Database) GetParticipants(ctx context.Context) ([]Participant, error) {
	query := `
		SELECT *
		FROM participants
		ORDER BY participant_id ASC
	`

	var participants []Participant
	if err := d.db.SelectContext(ctx, &participants, query); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	return participants, nil
}

// ReplaceParticipants swaps the whole snapshot in one transaction and records
// the import. Every refresh replaces prior data, there is no incremental
// update.
func (d *Database) ReplaceParticipants(ctx context.Context, participants []Participant, source string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM participants"); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}

	if len(participants) > 0 {
		query := `
			INSERT INTO participants (participant_name, participant_dob, participant_gender, participant_contact, participant_club, participant_event, participant_extra_event, participant_bow_sharing)
			VALUES (:participant_name, :participant_dob, :participant_gender, :participant_contact, :participant_club, :participant_event, :participant_extra_event, :participant_bow_sharing)
		`
		if _, err = tx.NamedExecContext(ctx, query, participants); err != nil {
			return fmt.Errorf("failed to insert participants: %w", err)
		}
	}

	importQuery := `
		INSERT INTO imports (import_source, import_participants)
		VALUES ($1, $2)
	`
	if _, err = tx.ExecContext(ctx, importQuery, source, len(participants)); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit participant snapshot: %w", err)
	}

	return nil
}

// GetLastImport returns the most recent import, or sql.ErrNoRows when no data
// has ever been imported.
func (d *Database) GetLastImport(ctx context.Context) (*Import, error) {
	query := `
		SELECT *
		FROM imports
		ORDER BY import_created_at DESC
		LIMIT 1
	`

	var imp Import
	if err := d.db.GetContext(ctx, &imp, query); err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}

	return &imp, nil
}

// GetImports returns the most recent imports, newest first.
func (d *Database) GetImports(ctx context.Context, limit int) ([]Import, error) {
	query := `
		SELECT *
		FROM imports
		ORDER BY import_created_at DESC
		LIMIT $1
	`

	var imports []Import
	if err := d.db.SelectContext(ctx, &imports, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get imports: %w", err)
	}

	return imports, nil
}
