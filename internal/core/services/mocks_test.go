package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SafeRepository ---
type MockSafeRepository struct {
	mock.Mock
}

var _ portsrepo.SafeRepositoryWithTx = (*MockSafeRepository)(nil)

func (m *MockSafeRepository) FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error) {
	args := m.Called(ctx, safeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Safe), args.Error(1)
}

func (m *MockSafeRepository) ListSafes(ctx context.Context) ([]domain.Safe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Safe), args.Error(1)
}

func (m *MockSafeRepository) ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.Safe, error) {
	args := m.Called(ctx, safeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Safe), args.Error(1)
}

func (m *MockSafeRepository) SaveSafe(ctx context.Context, safe domain.Safe) error {
	return m.Called(ctx, safe).Error(0)
}

func (m *MockSafeRepository) UpdateSafeName(ctx context.Context, safeID, name, userID string, now time.Time) error {
	return m.Called(ctx, safeID, name, userID, now).Error(0)
}

func (m *MockSafeRepository) DeleteSafe(ctx context.Context, safeID string) error {
	return m.Called(ctx, safeID).Error(0)
}

func (m *MockSafeRepository) LockSafeForUpdate(ctx context.Context, tx pgx.Tx, safeID string) (*domain.Safe, error) {
	args := m.Called(ctx, tx, safeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Safe), args.Error(1)
}

func (m *MockSafeRepository) SaveSafeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string, balance decimal.Decimal) error {
	return m.Called(ctx, tx, safeID, balance).Error(0)
}

func (m *MockSafeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSafeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockSafeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBySafes(ctx context.Context, safeIDs []string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, safeIDs, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactionsBySafe(ctx context.Context, safeID string) (int, error) {
	args := m.Called(ctx, safeID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactionsByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	return m.Called(ctx, tx, transactionID).Error(0)
}

func (m *MockTransactionRepository) FindTransactionsBySafeInTx(ctx context.Context, tx pgx.Tx, safeID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, safeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.SubCategory, error) {
	args := m.Called(ctx, subCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubCategory), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *MockCategoryRepository) SaveSubCategory(ctx context.Context, subCategory domain.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *MockCategoryRepository) UpdateSubCategory(ctx context.Context, subCategory domain.SubCategory) error {
	return m.Called(ctx, subCategory).Error(0)
}

func (m *MockCategoryRepository) DeleteSubCategory(ctx context.Context, subCategoryID string) error {
	return m.Called(ctx, subCategoryID).Error(0)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

var _ portsrepo.ContactReader = (*MockContactRepository)(nil)

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListCustomers(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListVendors(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// --- Mock AccessGrantRepository ---
type MockAccessGrantRepository struct {
	mock.Mock
}

var _ portsrepo.AccessGrantRepositoryFacade = (*MockAccessGrantRepository)(nil)

func (m *MockAccessGrantRepository) ListGrantsByUser(ctx context.Context, userID string) ([]domain.AccessGrant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessGrant), args.Error(1)
}

func (m *MockAccessGrantRepository) ListGrants(ctx context.Context) ([]domain.AccessGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessGrant), args.Error(1)
}

func (m *MockAccessGrantRepository) SaveGrant(ctx context.Context, grant domain.AccessGrant) error {
	return m.Called(ctx, grant).Error(0)
}

func (m *MockAccessGrantRepository) DeleteGrant(ctx context.Context, userID, safeID string) error {
	return m.Called(ctx, userID, safeID).Error(0)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}
