package api

// User is the wire representation of a user account. The password hash never
// leaves the server.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

// Group is the wire representation of an expense-sharing group.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Currency  string   `json:"currency"`
	Members   []string `json:"members"`
	CreatedBy string   `json:"created_by"`
	CreatedAt int64    `json:"created_at"`
}

// ExpenseShare is one user's part in an expense, in minor units.
type ExpenseShare struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

// Expense is the wire representation of a shared expense.
type Expense struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"group_id"`
	Description string          `json:"description"`
	Total       int64           `json:"total"`
	Payers      []*ExpenseShare `json:"payers"`
	Splits      []*ExpenseShare `json:"splits"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   int64           `json:"created_at"`
}

// Settlement is the wire representation of a recorded payment between members.
type Settlement struct {
	ID         string `json:"id"`
	GroupID    string `json:"group_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  int64  `json:"created_at"`
}

// MemberBalance is one member's net position within a group, in minor units.
// Positive means the group owes them, negative means they owe the group.
type MemberBalance struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	NetBalance  int64  `json:"net_balance"`
}

// SimplifiedDebt is a single settling transfer: FromUser pays ToUser Amount.
type SimplifiedDebt struct {
	FromUserID   string `json:"from_user_id"`
	FromUserName string `json:"from_user_name"`
	ToUserID     string `json:"to_user_id"`
	ToUserName   string `json:"to_user_name"`
	Amount       int64  `json:"amount"`
}

// SimplificationStep is one entry in the settlement-plan narration.
// Settlement is null for narrative-only steps.
type SimplificationStep struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Balances    map[string]int64  `json:"balances"`
	Names       map[string]string `json:"names"`
	Settlement  *SimplifiedDebt   `json:"settlement,omitempty"`
}

// AuthService messages.

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// GroupService messages.

type CreateGroupRequest struct {
	Name     string   `json:"name"`
	Currency string   `json:"currency"`
	Members  []string `json:"members"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type UpdateGroupRequest struct {
	GroupID  string   `json:"group_id"`
	Name     string   `json:"name"`
	Currency string   `json:"currency"`
	Members  []string `json:"members"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupBalancesResponse struct {
	Balances        []*MemberBalance  `json:"balances"`
	SimplifiedDebts []*SimplifiedDebt `json:"simplified_debts"`
}

type ExplainSettlementRequest struct {
	GroupID string `json:"group_id"`
}

type ExplainSettlementResponse struct {
	Steps []*SimplificationStep `json:"steps"`
}

// ExpenseService messages.

type AddExpenseRequest struct {
	GroupID     string          `json:"group_id"`
	Description string          `json:"description"`
	Total       int64           `json:"total"`
	Payers      []*ExpenseShare `json:"payers"`
	Splits      []*ExpenseShare `json:"splits"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesByGroupRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesByGroupResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

// SettlementService messages.

type RecordSettlementRequest struct {
	GroupID  string `json:"group_id"`
	ToUserID string `json:"to_user_id"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`

	// RequiresBiometric reports whether the client must complete biometric
	// step-up authentication before this settlement can be confirmed.
	RequiresBiometric bool `json:"requires_biometric"`
}

type ConfirmSettlementRequest struct {
	SettlementID string `json:"settlement_id"`
}

type ConfirmSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type RejectSettlementRequest struct {
	SettlementID string `json:"settlement_id"`
}

type RejectSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ListSettlementsByGroupRequest struct {
	GroupID string `json:"group_id"`
}

type ListSettlementsByGroupResponse struct {
	Settlements []*Settlement `json:"settlements"`
}
