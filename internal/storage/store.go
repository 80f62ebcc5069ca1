// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/splitkaro/backend/internal/models"
)

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
	// such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no such
	// user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. IDs with no
	// matching user are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// CreateGroup persists a new group. The group's ID and CreatedAt fields
	// are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID, including its member list.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember retrieves all groups the given user belongs to.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// UpdateGroup replaces a group's name, currency, and member list.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and its dependent rows.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddGroupMembers adds the given user IDs to a group, ignoring ones that
	// are already members.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// CreateExpense persists a new expense with its payer and split shares.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, including shares.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves all expenses for a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement persists a new settlement.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByGroup retrieves all settlements for a group, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// UpdateSettlementStatus transitions a settlement to the given status.
	UpdateSettlementStatus(ctx context.Context, settlementID, status string) error

	// DeleteSettlement removes a settlement by ID.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
