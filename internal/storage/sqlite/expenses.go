package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitkaro/backend/internal/models"
)

// CreateExpense persists a new expense with its payer and split shares.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, total, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, expense.Total,
		expense.CreatedBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, payer := range expense.Payers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_payers (expense_id, user_id, amount) VALUES (?, ?, ?)",
			expense.ID, payer.UserID, payer.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense payer: %w", err)
		}
	}

	for _, split := range expense.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, user_id, amount) VALUES (?, ?, ?)",
			expense.ID, split.UserID, split.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, description, total, created_by, created_at FROM expenses WHERE id = ?",
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Total,
		&expense.CreatedBy, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if expense.Payers, err = s.expenseShares(ctx, "expense_payers", expense.ID); err != nil {
		return nil, err
	}
	if expense.Splits, err = s.expenseShares(ctx, "expense_splits", expense.ID); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpensesByGroup retrieves all expenses for a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, description, total, created_by, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description,
			&expense.Total, &expense.CreatedBy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if expense.Payers, err = s.expenseShares(ctx, "expense_payers", expense.ID); err != nil {
			return nil, err
		}
		if expense.Splits, err = s.expenseShares(ctx, "expense_splits", expense.ID); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// DeleteExpense removes an expense; share rows cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM expenses WHERE id = ?", expenseID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return fmt.Errorf("failed to check expense existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

// expenseShares loads the share rows for one expense from either the payers
// or the splits table. The table name is always one of the two constants
// above, never caller input.
func (s *SQLiteStore) expenseShares(ctx context.Context, table, expenseID string) ([]models.ExpenseShare, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT user_id, amount FROM %s WHERE expense_id = ? ORDER BY user_id", table),
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	var shares []models.ExpenseShare
	for rows.Next() {
		var share models.ExpenseShare
		if err := rows.Scan(&share.UserID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return shares, nil
}
