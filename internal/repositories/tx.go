package repositories

import "gorm.io/gorm"

// Tx bundles transaction-scoped repositories. Writes made through them
// commit or roll back together.
type Tx struct {
	Tips        TipRepository
	Wallets     WalletRepository
	Withdrawals WithdrawalRepository
}

// TxRunner runs multi-step balance mutations inside a single database
// transaction.
type TxRunner interface {
	ExecuteInTransaction(fn func(tx Tx) error) error
}

type txRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) ExecuteInTransaction(fn func(Tx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(Tx{
			Tips:        NewTipRepository(tx),
			Wallets:     NewWalletRepository(tx),
			Withdrawals: NewWithdrawalRepository(tx),
		})
	})
}
