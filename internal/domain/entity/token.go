package entity

// Token is a single asset entry returned by the ston.fi balance list.
// Balance is the raw integer amount in the token's smallest unit.
type Token struct {
	DisplayName     string `json:"display_name" yaml:"displayName"`
	Balance         string `json:"balance" yaml:"balance"`
	Decimals        int    `json:"decimals" yaml:"decimals"`
	ImageURL        string `json:"image_url" yaml:"imageUrl"`
	ContractAddress string `json:"contract_address,omitempty" yaml:"contractAddress,omitempty"`
	Symbol          string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}
