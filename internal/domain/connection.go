package domain

import "time"

type ConnectionStatus string

const (
	ConnectionStatusActive   ConnectionStatus = "ACTIVE"
	ConnectionStatusDisabled ConnectionStatus = "DISABLED"
)

// Connection representa a credencial de um lojista para uma loja no Saipos.
// Imutável depois de criada, exceto rotação de token e status.
type Connection struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Name      string           `json:"name"`
	APIToken  string           `json:"-"`
	StoreID   string           `json:"store_id"`
	Status    ConnectionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreateConnectionRequest struct {
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	APIToken string `json:"api_token"`
	StoreID  string `json:"store_id"`
}

type UpdateConnectionStatusRequest struct {
	ID     string           `json:"-"`
	Status ConnectionStatus `json:"status"`
}
