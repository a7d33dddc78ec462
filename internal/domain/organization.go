package domain

// Organization is an Azure DevOps account as returned by the accounts API.
type Organization struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	AccountURI  string `json:"accountUri"`
}
