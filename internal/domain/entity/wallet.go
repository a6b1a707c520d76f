package entity

// WalletStatus describes the wallet connector state delivered to status-change listeners.
type WalletStatus struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}
