// Package memory provides an embedded implementation of the repository
// ports. It backs tests and the STORAGE_BACKEND=memory mode, where the
// tracker runs without Postgres and loses state on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneytrack/money_tracker_app/internal/utils/timewindow"
)

// memAccount wraps an account with its own mutex so that read-modify-write
// of the balance is serialized per account while different accounts proceed
// in parallel.
type memAccount struct {
	mu  sync.Mutex
	acc domain.Account
}

// Store implements AccountRepository, TransactionRepository and
// ReportingRepository over process memory.
type Store struct {
	mu       sync.RWMutex // guards the accounts map and id assignment
	accounts map[int64]*memAccount
	order    []int64 // account insertion order
	nextAcct int64

	ledgerMu  sync.RWMutex // guards the ledger slice and transaction ids
	ledger    []domain.Transaction
	nextTxnID int64

	loc *time.Location
}

var (
	_ portsrepo.AccountRepository     = (*Store)(nil)
	_ portsrepo.TransactionRepository = (*Store)(nil)
	_ portsrepo.ReportingRepository   = (*Store)(nil)
)

// NewStore creates an empty store. loc is the ledger timezone used for
// calendar-date aggregation.
func NewStore(loc *time.Location) *Store {
	return &Store{
		accounts: make(map[int64]*memAccount),
		loc:      loc,
	}
}

// AddAccount registers an account, assigning the next id when acc.AccountID
// is zero, and returns the stored snapshot.
func (s *Store) AddAccount(acc domain.Account) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc.AccountID == 0 {
		s.nextAcct++
		acc.AccountID = s.nextAcct
	} else if acc.AccountID > s.nextAcct {
		s.nextAcct = acc.AccountID
	}
	now := time.Now().In(s.loc)
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = now
	}
	if acc.UpdatedAt.IsZero() {
		acc.UpdatedAt = now
	}
	s.accounts[acc.AccountID] = &memAccount{acc: acc}
	s.order = append(s.order, acc.AccountID)
	return acc
}

// SeedDefaults provisions the stock set of accounts the tracker ships with.
func (s *Store) SeedDefaults() {
	defaults := []domain.Account{
		{Name: "alipay", NameCN: "支付宝", IsDebt: false, Icon: "alipay", Color: "#1677FF"},
		{Name: "huabei", NameCN: "花呗欠额", IsDebt: true, Icon: "huabei", Color: "#FF6B35"},
		{Name: "icbc", NameCN: "工行卡", IsDebt: false, Icon: "bank", Color: "#C41230"},
		{Name: "boc", NameCN: "中国银行卡", IsDebt: false, Icon: "bank", Color: "#E60012"},
		{Name: "wechat", NameCN: "微信", IsDebt: false, Icon: "wechat", Color: "#07C160"},
		{Name: "jd_baitiao", NameCN: "京东白条", IsDebt: true, Icon: "jd", Color: "#E4393C"},
	}
	for _, acc := range defaults {
		acc.Balance = decimal.Zero
		s.AddAccount(acc)
	}
}

func (s *Store) find(accountID int64) (*memAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ma, ok := s.accounts[accountID]
	return ma, ok
}

// FindAccountByID returns a snapshot of the account.
func (s *Store) FindAccountByID(_ context.Context, accountID int64) (*domain.Account, error) {
	ma, ok := s.find(accountID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	ma.mu.Lock()
	cp := ma.acc
	ma.mu.Unlock()
	return &cp, nil
}

// ListAccounts returns snapshots in insertion order.
func (s *Store) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	order := make([]int64, len(s.order))
	copy(order, s.order)
	s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(order))
	for _, id := range order {
		ma, ok := s.find(id)
		if !ok {
			continue
		}
		ma.mu.Lock()
		accounts = append(accounts, ma.acc)
		ma.mu.Unlock()
	}
	return accounts, nil
}

// OverrideBalance sets the balance to an absolute value under the account's
// mutex, so it cannot interleave with a concurrent SaveTransaction.
func (s *Store) OverrideBalance(_ context.Context, accountID int64, balance decimal.Decimal, now time.Time) (*domain.Account, error) {
	ma, ok := s.find(accountID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	ma.mu.Lock()
	defer ma.mu.Unlock()
	ma.acc.Balance = balance
	ma.acc.UpdatedAt = now
	cp := ma.acc
	return &cp, nil
}

// SaveTransaction appends the ledger entry and applies the signed delta to
// the account balance inside the account's critical section. Either both
// happen or neither does.
func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	ma, ok := s.find(txn.AccountID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	ma.mu.Lock()
	defer ma.mu.Unlock()

	saved := txn
	saved.AccountName = ma.acc.NameCN
	saved.AccountColor = ma.acc.Color
	saved.AccountIsDebt = ma.acc.IsDebt

	s.ledgerMu.Lock()
	s.nextTxnID++
	saved.TransactionID = s.nextTxnID
	s.ledger = append(s.ledger, saved)
	s.ledgerMu.Unlock()

	ma.acc.Balance = ma.acc.Balance.Add(txn.Amount)
	ma.acc.UpdatedAt = txn.CreatedAt
	return &saved, nil
}

// snapshotDesc copies the ledger sorted newest first (created_at desc, id
// desc tie-break).
func (s *Store) snapshotDesc() []domain.Transaction {
	s.ledgerMu.RLock()
	txns := make([]domain.Transaction, len(s.ledger))
	copy(txns, s.ledger)
	s.ledgerMu.RUnlock()

	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		}
		return txns[i].TransactionID > txns[j].TransactionID
	})
	return txns
}

// ListTransactions returns one page, newest first, plus the ledger total.
func (s *Store) ListTransactions(_ context.Context, limit, offset int) ([]domain.Transaction, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	txns := s.snapshotDesc()
	total := int64(len(txns))

	if offset >= len(txns) {
		return []domain.Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(txns) {
		end = len(txns)
	}
	return txns[offset:end], total, nil
}

// ListAllTransactions returns the full ledger newest first.
func (s *Store) ListAllTransactions(_ context.Context) ([]domain.Transaction, error) {
	return s.snapshotDesc(), nil
}

// SumExpensesBetween sums expense magnitudes over created_at in [from, to).
func (s *Store) SumExpensesBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	s.ledgerMu.RLock()
	defer s.ledgerMu.RUnlock()

	total := decimal.Zero
	for _, txn := range s.ledger {
		if !txn.IsExpense() {
			continue
		}
		if txn.CreatedAt.Before(from) || !txn.CreatedAt.Before(to) {
			continue
		}
		total = total.Add(txn.Amount.Abs())
	}
	return total, nil
}

// DailyExpenseTotals sums expense magnitudes per calendar day in loc.
func (s *Store) DailyExpenseTotals(_ context.Context, from, to time.Time, loc *time.Location) (map[time.Time]decimal.Decimal, error) {
	s.ledgerMu.RLock()
	defer s.ledgerMu.RUnlock()

	totals := make(map[time.Time]decimal.Decimal)
	for _, txn := range s.ledger {
		if !txn.IsExpense() {
			continue
		}
		if txn.CreatedAt.Before(from) || !txn.CreatedAt.Before(to) {
			continue
		}
		day := timewindow.DateOf(txn.CreatedAt, loc)
		totals[day] = totals[day].Add(txn.Amount.Abs())
	}
	return totals, nil
}
