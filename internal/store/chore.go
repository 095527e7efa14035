package store

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"chorejar/internal/catalog"
	"chorejar/internal/model"
)

type ChoreStore struct {
	db *sql.DB
}

func NewChoreStore(db *sql.DB) *ChoreStore {
	return &ChoreStore{db: db}
}

func scanChore(scanner interface{ Scan(...any) error }) (*model.Chore, error) {
	var c model.Chore
	var amount, freq, ctype string
	var prePopulated int

	err := scanner.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description, &amount,
		&freq, &ctype, &prePopulated, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if c.PaymentAmount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse payment amount: %w", err)
	}
	c.Frequency = model.Frequency(freq)
	c.ChoreType = model.ChoreType(ctype)
	c.IsPrePopulated = prePopulated != 0
	return &c, nil
}

const choreCols = `id, user_id, title, description, payment_amount, frequency, chore_type, is_pre_populated, created_at`

func (s *ChoreStore) Create(userID int64, title, description string, payment decimal.Decimal, freq model.Frequency, ctype model.ChoreType, prePopulated bool) (*model.Chore, error) {
	var pp int
	if prePopulated {
		pp = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO chores (user_id, title, description, payment_amount, frequency, chore_type, is_pre_populated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, title, description, payment.String(), string(freq), string(ctype), pp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert chore: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) GetByID(id int64) (*model.Chore, error) {
	row := s.db.QueryRow(`SELECT `+choreCols+` FROM chores WHERE id = ?`, id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) ListByUser(userID int64) ([]model.Chore, error) {
	rows, err := s.db.Query(`SELECT `+choreCols+` FROM chores WHERE user_id = ? ORDER BY title ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty list encodes as [] in JSON.
	chores := []model.Chore{}
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

// Update edits a chore definition. Tasks already started keep the earnings
// amount frozen at their creation.
func (s *ChoreStore) Update(id int64, title, description string, payment decimal.Decimal, freq model.Frequency, ctype model.ChoreType) (*model.Chore, error) {
	_, err := s.db.Exec(
		`UPDATE chores SET title = ?, description = ?, payment_amount = ?, frequency = ?, chore_type = ? WHERE id = ?`,
		title, description, payment.String(), string(freq), string(ctype), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update chore: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a chore; assignments and tasks cascade.
func (s *ChoreStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete chore: %w", err)
	}
	return nil
}

// SeedCatalog inserts the pre-populated chore set for a new owner.
// It is a no-op when the owner already has seeded chores.
func (s *ChoreStore) SeedCatalog(userID int64) error {
	var existing int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM chores WHERE user_id = ? AND is_pre_populated = 1`,
		userID,
	).Scan(&existing)
	if err != nil {
		return fmt.Errorf("check seeded chores: %w", err)
	}
	if existing > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, c := range catalog.Chores() {
		_, err := tx.Exec(
			`INSERT INTO chores (user_id, title, description, payment_amount, frequency, chore_type, is_pre_populated)
			 VALUES (?, ?, ?, ?, ?, ?, 1)`,
			userID, c.Title, c.Description, c.Payment, string(c.Frequency), string(c.Type),
		)
		if err != nil {
			return fmt.Errorf("seed chore %q: %w", c.Title, err)
		}
	}
	return tx.Commit()
}

// --- Assignment methods ---

func scanAssignment(scanner interface{ Scan(...any) error }) (*model.ChoreAssignment, error) {
	var a model.ChoreAssignment
	err := scanner.Scan(&a.ID, &a.ChoreID, &a.KidID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const assignmentCols = `id, chore_id, kid_id, created_at`

// Assign grants a kid a chore. Duplicate assignments are ignored; the
// existing row is returned.
func (s *ChoreStore) Assign(choreID, kidID int64) (*model.ChoreAssignment, error) {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO chore_assignments (chore_id, kid_id) VALUES (?, ?)`,
		choreID, kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	row := s.db.QueryRow(
		`SELECT `+assignmentCols+` FROM chore_assignments WHERE chore_id = ? AND kid_id = ?`,
		choreID, kidID,
	)
	a, err := scanAssignment(row)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// AssignToAll grants every kid of the owner the chore.
func (s *ChoreStore) AssignToAll(choreID, userID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT OR IGNORE INTO chore_assignments (chore_id, kid_id)
		 SELECT ?, id FROM kids WHERE user_id = ?`,
		choreID, userID,
	)
	if err != nil {
		return fmt.Errorf("assign to all: %w", err)
	}
	return tx.Commit()
}

func (s *ChoreStore) GetAssignmentByID(id int64) (*model.ChoreAssignment, error) {
	row := s.db.QueryRow(`SELECT `+assignmentCols+` FROM chore_assignments WHERE id = ?`, id)
	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

func (s *ChoreStore) RemoveAssignment(id int64) error {
	_, err := s.db.Exec(`DELETE FROM chore_assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove assignment: %w", err)
	}
	return nil
}

// IsAssigned reports whether a kid may attempt a chore.
func (s *ChoreStore) IsAssigned(choreID, kidID int64) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM chore_assignments WHERE chore_id = ? AND kid_id = ?`,
		choreID, kidID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return n > 0, nil
}

// ListAssignedToKid returns the chores a kid may attempt, in assignment order.
func (s *ChoreStore) ListAssignedToKid(kidID int64) ([]model.AssignedChore, error) {
	rows, err := s.db.Query(
		`SELECT a.id, c.id, c.user_id, c.title, c.description, c.payment_amount, c.frequency, c.chore_type, c.is_pre_populated, c.created_at
		 FROM chore_assignments a
		 INNER JOIN chores c ON c.id = a.chore_id
		 WHERE a.kid_id = ?
		 ORDER BY a.id ASC`,
		kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("list assigned chores: %w", err)
	}
	defer rows.Close()

	assigned := []model.AssignedChore{}
	for rows.Next() {
		var ac model.AssignedChore
		var amount, freq, ctype string
		var prePopulated int

		err := rows.Scan(
			&ac.AssignmentID, &ac.ID, &ac.UserID, &ac.Title, &ac.Description,
			&amount, &freq, &ctype, &prePopulated, &ac.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assigned chore: %w", err)
		}

		if ac.PaymentAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse payment amount: %w", err)
		}
		ac.Frequency = model.Frequency(freq)
		ac.ChoreType = model.ChoreType(ctype)
		ac.IsPrePopulated = prePopulated != 0
		assigned = append(assigned, ac)
	}
	return assigned, rows.Err()
}
