package stubapi

import (
	"context"
	"sync"
)

// accountRepository stores accounts. Implementations report a taken email as
// ErrEmailAlreadyExists and a missing account as ErrNotFound.
type accountRepository interface {
	createAccount(ctx context.Context, acc account) error
	accountByID(ctx context.Context, id string) (account, error)
	accountByEmail(ctx context.Context, email string) (account, error)
	listAccounts(ctx context.Context) ([]account, error)
	// updateAccount applies fn to the stored account and saves the result.
	// No other update of the same account interleaves.
	updateAccount(ctx context.Context, id string, fn func(*account) error) (account, error)
	deleteAccount(ctx context.Context, id string) error
}

// memoryAccounts is the default accountRepository. Accounts live as long as
// the process.
type memoryAccounts struct {
	rows *table[account]

	// createMu serializes the email uniqueness check with the insert.
	createMu sync.Mutex
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{rows: newTable[account]()}
}

func (m *memoryAccounts) createAccount(_ context.Context, acc account) error {
	m.createMu.Lock()
	defer m.createMu.Unlock()

	if _, taken := m.rows.find(func(row account) bool { return row.user.Email == acc.user.Email }); taken {
		return ErrEmailAlreadyExists
	}
	m.rows.put(acc.user.ID, acc)
	return nil
}

func (m *memoryAccounts) accountByID(_ context.Context, id string) (account, error) {
	acc, ok := m.rows.get(id)
	if !ok {
		return account{}, ErrNotFound
	}
	return acc, nil
}

func (m *memoryAccounts) accountByEmail(_ context.Context, email string) (account, error) {
	acc, ok := m.rows.find(func(row account) bool { return row.user.Email == email })
	if !ok {
		return account{}, ErrNotFound
	}
	return acc, nil
}

func (m *memoryAccounts) listAccounts(context.Context) ([]account, error) {
	return m.rows.list(nil), nil
}

func (m *memoryAccounts) updateAccount(_ context.Context, id string, fn func(*account) error) (account, error) {
	return m.rows.update(id, fn)
}

func (m *memoryAccounts) deleteAccount(_ context.Context, id string) error {
	if !m.rows.delete(id) {
		return ErrNotFound
	}
	return nil
}
