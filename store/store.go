package store

import (
	"go-ledger/models"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds in-memory customers and the journal of completed transactions
type Store struct {
	customers    map[string]*models.Customer
	transactions []models.Transaction
	mutex        sync.RWMutex
}

// New creates an empty Store
func New() *Store {
	return &Store{customers: make(map[string]*models.Customer)}
}

// AddCustomer adds a customer to the store
func (s *Store) AddCustomer(customer *models.Customer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.customers[customer.ID()] = customer
}

// GetCustomerByID retrieves a customer by ID
func (s *Store) GetCustomerByID(id string) (*models.Customer, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	customer, exists := s.customers[id]
	return customer, exists
}

// AddTransaction assigns an ID and timestamp to the transaction and appends it to the journal
func (s *Store) AddTransaction(tx models.Transaction) models.Transaction {
	tx.ID = uuid.New().String()
	tx.CreatedAt = time.Now().UTC()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.transactions = append(s.transactions, tx)
	return tx
}

// RecordDeposit journals a deposit into account
func (s *Store) RecordDeposit(account int64, amount decimal.Decimal) models.Transaction {
	return s.AddTransaction(models.Transaction{
		AccountNumber: account,
		Type:          models.TransactionDeposit,
		Amount:        amount,
	})
}

// RecordWithdrawal journals a withdrawal from account
func (s *Store) RecordWithdrawal(account int64, amount decimal.Decimal) models.Transaction {
	return s.AddTransaction(models.Transaction{
		AccountNumber: account,
		Type:          models.TransactionWithdrawal,
		Amount:        amount,
	})
}

// RecordTransfer journals a transfer with its memo
func (s *Store) RecordTransfer(from, to int64, amount decimal.Decimal, memo string) models.Transaction {
	return s.AddTransaction(models.Transaction{
		AccountNumber: from,
		Type:          models.TransactionTransfer,
		Amount:        amount,
		FromAccount:   from,
		ToAccount:     to,
		Memo:          memo,
	})
}

// GetTransactionsByAccount retrieves all transactions touching an account, oldest first
func (s *Store) GetTransactionsByAccount(account int64) []models.Transaction {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	transactions := []models.Transaction{}
	for _, tx := range s.transactions {
		if tx.Involves(account) {
			transactions = append(transactions, tx)
		}
	}
	return transactions
}
