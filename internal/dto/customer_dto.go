package dto

type CustomerResponse struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	CreatedAt  string  `json:"created_at"`
}

type CustomerListResponse struct {
	Data []CustomerResponse `json:"data"`
}
