package types

// Product describes one catalog item inside a view, cart or purchase
// payload. DealId/OptionId are the catalog coordinates; Count only
// matters for cart and purchase events.
type Product struct {
	DealId   string `json:"deal_id"`
	OptionId string `json:"option_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Url      string `json:"url,omitempty"`
	ImageUrl string `json:"imgUrl,omitempty"`
	Price    string `json:"price,omitempty"`
	Count    int    `json:"count,omitempty"`
}

type CartTotals struct {
	Subtotal string `json:"subtotal,omitempty"`
	Shipping string `json:"shipping,omitempty"`
	Tax      string `json:"tax,omitempty"`
	Total    string `json:"total,omitempty"`
}

// User is the identification block embedded in every payload.
// Id is the persisted visitor token; Email and Name are only present
// once the host has identified the visitor.
type User struct {
	Id    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
