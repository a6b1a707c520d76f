package entity

import "time"

// ViewState is a rendered snapshot of the wallet page.
type ViewState struct {
	Loading        bool       `json:"loading"`
	Connected      bool       `json:"connected"`
	WalletAddress  string     `json:"walletAddress,omitempty"`
	DisplayAddress string     `json:"displayAddress,omitempty"`
	Tokens         []TokenRow `json:"tokens"`
	SelectedToken  *TokenRow  `json:"selectedToken,omitempty"`
	PriceHistory   []PriceRow `json:"priceHistory"`
	Notice         *Notice    `json:"notice,omitempty"`
}

// TokenRow is a token formatted for the balances table.
type TokenRow struct {
	Index           int    `json:"index"`
	DisplayName     string `json:"displayName"`
	ImageURL        string `json:"imageUrl"`
	Symbol          string `json:"symbol,omitempty"`
	ContractAddress string `json:"contractAddress"`
	Balance         string `json:"balance"`
}

// PriceRow is a price point formatted for the history table.
type PriceRow struct {
	Date  string `json:"date"`
	Close string `json:"close"`
}

// NoticeLevel tells the front end how to style an acknowledgement.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short-lived acknowledgement shown to the user.
type Notice struct {
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"createdAt"`
}
