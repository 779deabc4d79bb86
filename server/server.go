// Package server exposes the bank over HTTP with gin.
package server

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go-ledger/bank"
	"go-ledger/logging"
	"go-ledger/models"
	"go-ledger/report"
	"go-ledger/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

type OpenAccountRequest struct {
	CustomerID string `json:"customerId"`
	Type       string `json:"type"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	From   int64           `json:"from"`
	To     int64           `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Memo   string          `json:"memo"`
}

var nameRegex = regexp.MustCompile(`^[\p{L}\s'-]+$`)

// Server wires the bank, the customer/journal store and the report formatter to HTTP handlers.
type Server struct {
	bank      *bank.Bank
	store     *store.Store
	formatter *report.Formatter
	logger    *slog.Logger
}

func New(b *bank.Bank, s *store.Store, f *report.Formatter, logger *slog.Logger) *Server {
	return &Server{bank: b, store: s, formatter: f, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router(allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), corsMiddleware(allowOrigins))

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/bank", s.getBank)
	api.POST("/customers", s.createCustomer)
	api.GET("/customers/:customerId", s.getCustomer)

	api.POST("/accounts", s.openAccount)
	api.GET("/accounts", s.listAccounts)
	api.GET("/accounts/:number", s.getAccount)
	api.DELETE("/accounts/:number", s.closeAccount)
	api.POST("/accounts/:number/deposits", s.deposit)
	api.POST("/accounts/:number/withdrawals", s.withdraw)
	api.GET("/accounts/:number/transactions", s.getTransactions)

	api.POST("/transfers", s.transfer)
	api.POST("/overdrawn/lock", s.lockOverdrawn)

	api.GET("/reports/accounts", s.accountsReport)
	api.GET("/reports/birthdays", s.birthdaysReport)
	api.GET("/reports/free-numbers", s.freeNumbersReport)
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getBank(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"routingNumber": s.bank.RoutingNumber(),
		"accounts":      len(s.bank.AccountNumbers()),
	})
}

func (s *Server) createCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []string{"Invalid request body"})
		return
	}

	var errors []string
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		errors = append(errors, "Name cannot be empty")
	} else if !nameRegex.MatchString(req.Name) {
		errors = append(errors, "Name must contain only letters and spaces")
	}
	birthdate, err := time.Parse(models.BirthdateLayout, req.Birthdate)
	if err != nil {
		errors = append(errors, "Birthdate must be formatted as YYYY-MM-DD")
	} else if birthdate.After(time.Now()) {
		errors = append(errors, "Birthdate cannot be in the future")
	}
	if len(errors) > 0 {
		respondValidation(c, errors)
		return
	}

	customer := models.NewCustomer(req.Name, birthdate)
	s.store.AddCustomer(customer)
	logging.FromContext(c.Request.Context()).Info("customer created", "customer_id", customer.ID())
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) getCustomer(c *gin.Context) {
	customer, found := s.store.GetCustomerByID(c.Param("customerId"))
	if !found {
		respondError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) openAccount(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []string{"Invalid request body"})
		return
	}
	customer, found := s.store.GetCustomerByID(req.CustomerID)
	if !found {
		respondError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var (
		number int64
		err    error
	)
	switch bank.Kind(req.Type) {
	case bank.KindChecking:
		number, err = s.bank.OpenChecking(customer)
	case bank.KindSavings:
		number, err = s.bank.OpenSavings(customer)
	default:
		respondValidation(c, []string{"Type must be checking or savings"})
		return
	}
	if err != nil {
		respondBankError(c, err)
		return
	}

	logging.FromContext(c.Request.Context()).Info("account opened",
		"account", number, "type", req.Type, "customer_id", customer.ID())
	snap, _ := s.bank.Account(number)
	c.JSON(http.StatusCreated, snap)
}

func (s *Server) listAccounts(c *gin.Context) {
	if raw, ok := c.GetQuery("min"); ok {
		minimum, err := decimal.NewFromString(raw)
		if err != nil {
			respondValidation(c, []string{"min must be a decimal number"})
			return
		}
		accounts := s.bank.AccountsAtLeast(minimum)
		if accounts == nil {
			accounts = []bank.Snapshot{}
		}
		c.JSON(http.StatusOK, gin.H{"accounts": accounts})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountNumbers": s.bank.AccountNumbers()})
}

// accountNumber parses the :number path parameter, responding 400 on failure.
func accountNumber(c *gin.Context) (int64, bool) {
	n, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		respondValidation(c, []string{"Account number must be an integer"})
		return 0, false
	}
	return n, true
}

// existingAccount parses :number and responds 404 if it is not registered.
func (s *Server) existingAccount(c *gin.Context) (int64, bool) {
	n, ok := accountNumber(c)
	if !ok {
		return 0, false
	}
	if _, found := s.bank.BalanceOf(n); !found {
		respondError(c, http.StatusNotFound, "Account not found")
		return 0, false
	}
	return n, true
}

func (s *Server) getAccount(c *gin.Context) {
	n, ok := accountNumber(c)
	if !ok {
		return
	}
	snap, found := s.bank.Account(n)
	if !found {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) closeAccount(c *gin.Context) {
	n, ok := accountNumber(c)
	if !ok {
		return
	}
	if !s.bank.Close(n) {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}
	logging.FromContext(c.Request.Context()).Info("account closed", "account", n)
	c.Status(http.StatusNoContent)
}

func (s *Server) deposit(c *gin.Context) {
	n, ok := s.existingAccount(c)
	if !ok {
		return
	}
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []string{"Invalid request body"})
		return
	}

	balance, applied, found := s.bank.Credit(n, req.Amount)
	if !found {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}
	if applied {
		s.store.RecordDeposit(n, req.Amount)
	}
	c.JSON(http.StatusOK, gin.H{"accountNumber": n, "applied": applied, "balance": balance})
}

func (s *Server) withdraw(c *gin.Context) {
	n, ok := s.existingAccount(c)
	if !ok {
		return
	}
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []string{"Invalid request body"})
		return
	}

	success, err := s.bank.Withdraw(n, req.Amount)
	if err != nil {
		logging.FromContext(c.Request.Context()).Warn("withdrawal refused", "account", n, "error", err)
		respondBankError(c, err)
		return
	}
	if success {
		s.store.RecordWithdrawal(n, req.Amount)
	}
	balance, _ := s.bank.BalanceOf(n)
	c.JSON(http.StatusOK, gin.H{"accountNumber": n, "success": success, "balance": balance})
}

func (s *Server) transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []string{"Invalid request body"})
		return
	}

	for _, n := range []int64{req.From, req.To} {
		if _, found := s.bank.BalanceOf(n); !found {
			respondError(c, http.StatusNotFound, "Account not found")
			return
		}
	}

	success, err := s.bank.Transfer(req.From, req.To, req.Amount, req.Memo)
	if err != nil {
		logging.FromContext(c.Request.Context()).Warn("transfer refused", "from", req.From, "to", req.To, "error", err)
		respondBankError(c, err)
		return
	}
	resp := gin.H{"success": success}
	if success {
		tx := s.store.RecordTransfer(req.From, req.To, req.Amount, req.Memo)
		resp["transactionId"] = tx.ID
		logging.FromContext(c.Request.Context()).Info("transfer completed",
			"from", req.From, "to", req.To, "amount", req.Amount.String(), "transaction_id", tx.ID)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getTransactions(c *gin.Context) {
	n, ok := accountNumber(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accountNumber": n,
		"transactions":  s.store.GetTransactionsByAccount(n),
	})
}

func (s *Server) lockOverdrawn(c *gin.Context) {
	locked := s.bank.LockOverdrawn()
	logging.FromContext(c.Request.Context()).Info("overdrawn accounts locked", "count", locked)
	c.JSON(http.StatusOK, gin.H{"locked": locked})
}

func (s *Server) accountsReport(c *gin.Context) {
	c.String(http.StatusOK, s.formatter.Accounts(s.bank.Snapshots()))
}

func (s *Server) birthdaysReport(c *gin.Context) {
	c.String(http.StatusOK, report.Lines(s.bank.CustomerBirthdays()))
}

func (s *Server) freeNumbersReport(c *gin.Context) {
	free := s.bank.FreeAccountNumbers()
	if free == nil {
		free = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"accountNumbers": free})
}
