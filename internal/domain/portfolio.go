package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType distinguishes a user's independent simulated portfolios.
type WalletType string

const (
	WalletType_Sandbox  WalletType = "SANDBOX"
	WalletType_Concours WalletType = "CONCOURS"
)

func (w WalletType) String() string {
	return string(w)
}

// ParseWalletType accepts either wallet name in any case. An empty string
// resolves to the sandbox wallet.
func ParseWalletType(s string) (WalletType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(WalletType_Sandbox):
		return WalletType_Sandbox, nil
	case string(WalletType_Concours):
		return WalletType_Concours, nil
	}
	return "", fmt.Errorf("unknown wallet type %q", s)
}

// Portfolio is the ledger owner's record of one wallet.
type Portfolio struct {
	PortfolioID    uuid.UUID
	UserID         uuid.UUID
	WalletType     WalletType
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
}

// Holdings is the running cash and share state of a portfolio.
type Holdings struct {
	Positions map[string]int64
	Cash      decimal.Decimal
}

func NewHoldings(cash decimal.Decimal) *Holdings {
	return &Holdings{
		Positions: map[string]int64{},
		Cash:      cash,
	}
}

// HeldSymbols returns the symbols with an open position, sorted.
func (h Holdings) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range h.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (h Holdings) DeepCopy() *Holdings {
	newHoldings := &Holdings{
		Cash:      h.Cash,
		Positions: make(map[string]int64, len(h.Positions)),
	}
	for symbol, quantity := range h.Positions {
		newHoldings.Positions[symbol] = quantity
	}

	return newHoldings
}

// TotalValue marks every position to market with priceOf and adds cash.
func (h Holdings) TotalValue(priceOf func(symbol string) decimal.Decimal) decimal.Decimal {
	totalValue := h.Cash
	for _, symbol := range h.HeldSymbols() {
		quantity := h.Positions[symbol]
		totalValue = totalValue.Add(decimal.NewFromInt(quantity).Mul(priceOf(symbol)))
	}

	return totalValue
}
