package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"chorejar/internal/model"
)

type KidStore struct {
	db *sql.DB
}

func NewKidStore(db *sql.DB) *KidStore {
	return &KidStore{db: db}
}

func scanKid(scanner interface{ Scan(...any) error }) (*model.Kid, error) {
	var k model.Kid
	var amount, wealth, freq string

	err := scanner.Scan(
		&k.ID, &k.UserID, &k.Name, &k.Birthday, &amount, &freq,
		&k.AvatarColor, &k.SavingsSplit, &wealth, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if k.PocketMoneyAmount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse pocket money amount: %w", err)
	}
	if k.NetWealth, err = decimal.NewFromString(wealth); err != nil {
		return nil, fmt.Errorf("parse net wealth: %w", err)
	}
	k.PocketMoneyFrequency = model.Frequency(freq)
	return &k, nil
}

const kidCols = `id, user_id, name, birthday, pocket_money_amount, pocket_money_frequency, avatar_color, savings_split, net_wealth, created_at, updated_at`

func (s *KidStore) Create(userID int64, name string, birthday time.Time, amount decimal.Decimal, freq model.Frequency, avatarColor string, savingsSplit int) (*model.Kid, error) {
	result, err := s.db.Exec(
		`INSERT INTO kids (user_id, name, birthday, pocket_money_amount, pocket_money_frequency, avatar_color, savings_split)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, name, birthday.UTC(), amount.String(), string(freq), avatarColor, savingsSplit,
	)
	if err != nil {
		return nil, fmt.Errorf("insert kid: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *KidStore) GetByID(id int64) (*model.Kid, error) {
	row := s.db.QueryRow(`SELECT `+kidCols+` FROM kids WHERE id = ?`, id)
	k, err := scanKid(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get kid: %w", err)
	}
	return k, nil
}

func (s *KidStore) ListByUser(userID int64) ([]model.Kid, error) {
	rows, err := s.db.Query(`SELECT `+kidCols+` FROM kids WHERE user_id = ? ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list kids: %w", err)
	}
	defer rows.Close()

	kids := []model.Kid{}
	for rows.Next() {
		k, err := scanKid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kid: %w", err)
		}
		kids = append(kids, *k)
	}
	return kids, rows.Err()
}

func (s *KidStore) Update(id int64, name string, birthday time.Time, amount decimal.Decimal, freq model.Frequency, avatarColor string, savingsSplit int) (*model.Kid, error) {
	_, err := s.db.Exec(
		`UPDATE kids SET name = ?, birthday = ?, pocket_money_amount = ?, pocket_money_frequency = ?, avatar_color = ?, savings_split = ?, updated_at = datetime('now')
		 WHERE id = ?`,
		name, birthday.UTC(), amount.String(), string(freq), avatarColor, savingsSplit, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update kid: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a kid; assignments and tasks cascade.
func (s *KidStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM kids WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete kid: %w", err)
	}
	return nil
}
