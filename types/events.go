package types

// TrackingType identifies the kind of beacon being fired. It is
// interpolated into the tracking URL and carried in every payload.
type TrackingType string

const (
	TrackingTypeView     TrackingType = "view"
	TrackingTypeCart     TrackingType = "cartEvent"
	TrackingTypePurchase TrackingType = "purchase"
	TrackingTypeSetUser  TrackingType = "setUser"
)

// CartEventType distinguishes the cart mutations that all travel
// under the single "cartEvent" tracking type.
type CartEventType string

const (
	CartEventAdd    CartEventType = "addToCart"
	CartEventSet    CartEventType = "setCart"
	CartEventRemove CartEventType = "removeFromCart"
)

// Event is the closed set of trackable events. Each variant carries
// its own typed payload and dispatch switches over the concrete types
// exhaustively. The unexported method keeps the set closed to this
// package.
type Event interface {
	TrackingType() TrackingType
	DataFields() map[string]interface{}

	trackable()
}

// View is fired when a visitor lands on a page that renders one or
// more products.
type View struct {
	PageName    string    `json:"pageName,omitempty"`
	Refinements []string  `json:"refinements,omitempty"`
	Products    []Product `json:"products,omitempty"`
}

func (v View) TrackingType() TrackingType {
	return TrackingTypeView
}

func (v View) DataFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if v.PageName != "" {
		fields["pageName"] = v.PageName
	}
	if len(v.Refinements) > 0 {
		fields["refinements"] = v.Refinements
	}
	if len(v.Products) > 0 {
		fields["products"] = v.Products
	}
	return fields
}

func (v View) trackable() {}

// CartUpdate is fired for every cart mutation. CartEventType tells
// add, set and remove apart on the wire.
type CartUpdate struct {
	CartEventType CartEventType `json:"cartEventType"`
	CartId        string        `json:"cartId,omitempty"`
	Products      []Product     `json:"products,omitempty"`
	Totals        *CartTotals   `json:"cartTotals,omitempty"`
}

func (c CartUpdate) TrackingType() TrackingType {
	return TrackingTypeCart
}

func (c CartUpdate) DataFields() map[string]interface{} {
	fields := map[string]interface{}{
		"cartEventType": string(c.CartEventType),
	}
	if c.CartId != "" {
		fields["cartId"] = c.CartId
	}
	if len(c.Products) > 0 {
		fields["products"] = c.Products
	}
	if c.Totals != nil {
		fields["cartTotals"] = c.Totals
	}
	return fields
}

func (c CartUpdate) trackable() {}

// Purchase is fired when a checkout completes.
type Purchase struct {
	OrderId  string      `json:"orderId,omitempty"`
	CartId   string      `json:"cartId,omitempty"`
	Products []Product   `json:"products,omitempty"`
	Totals   *CartTotals `json:"cartTotals,omitempty"`
	Currency string      `json:"currencyCode,omitempty"`
}

func (p Purchase) TrackingType() TrackingType {
	return TrackingTypePurchase
}

func (p Purchase) DataFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.OrderId != "" {
		fields["orderId"] = p.OrderId
	}
	if p.CartId != "" {
		fields["cartId"] = p.CartId
	}
	if len(p.Products) > 0 {
		fields["products"] = p.Products
	}
	if p.Totals != nil {
		fields["cartTotals"] = p.Totals
	}
	if p.Currency != "" {
		fields["currencyCode"] = p.Currency
	}
	return fields
}

func (p Purchase) trackable() {}

// UserUpdate carries new identification data for the current visitor.
// Empty fields mean "keep what is already known".
type UserUpdate struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (u UserUpdate) TrackingType() TrackingType {
	return TrackingTypeSetUser
}

func (u UserUpdate) DataFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Email != "" {
		fields["email"] = u.Email
	}
	if u.Name != "" {
		fields["name"] = u.Name
	}
	return fields
}

func (u UserUpdate) trackable() {}
