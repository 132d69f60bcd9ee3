package catalog

import (
	"github.com/zacharyhill/muse-go/logger"
	"github.com/zacharyhill/muse-go/types"
)

// Config carries the credentials for the third-party catalog-tracking
// integration. Without a config (or without a client) the adapter is
// inert and forwards nothing.
type Config struct {
	UserId      string
	AccessToken string
	FeedId      string
}

// Client is implemented by the externally owned catalog-tracking SDK.
// It is initialized once with the configured credentials and then
// receives one callback per supported event kind.
type Client interface {
	Init(cfg Config)

	View(activity ViewActivity)
	AddToCart(products []ProductActivity)
	RemoveFromCart(products []ProductActivity)
	Purchase(products []ProductActivity)
}

// ViewActivity is the reshaped view payload: page context only, no
// first-party identifiers leave the adapter.
type ViewActivity struct {
	PageName    string
	Refinements []string
}

// ProductActivity is the reshaped cart/purchase payload.
type ProductActivity struct {
	DealId   string
	OptionId string
	Count    int
}

// Adapter forwards an allow-listed subset of tracked events to the
// catalog client: views, cart adds/removes and purchases. Everything
// else (setCart, setUser, future variants) stays first-party only.
type Adapter struct {
	client Client
	logger logger.Logger
	ready  bool
}

func NewAdapter(client Client, cfg *Config, logger logger.Logger) *Adapter {
	a := &Adapter{
		client: client,
		logger: logger,
	}
	if client == nil || cfg == nil {
		logger.Debugf("catalog tracking disabled, no client or credentials configured")
		return a
	}
	client.Init(*cfg)
	a.ready = true
	return a
}

// Forward relays one event. The input is always the typed event, never
// the beacon envelope, so every kind is reshaped from the same place.
func (a *Adapter) Forward(event types.Event) {
	if !a.ready {
		return
	}

	switch e := event.(type) {
	case types.View:
		a.client.View(ViewActivity{
			PageName:    e.PageName,
			Refinements: e.Refinements,
		})
	case types.CartUpdate:
		switch e.CartEventType {
		case types.CartEventAdd:
			a.client.AddToCart(productActivities(e.Products))
		case types.CartEventRemove:
			a.client.RemoveFromCart(productActivities(e.Products))
		default:
			a.logger.Debugf("catalog tracking skipped cart event %q", e.CartEventType)
		}
	case types.Purchase:
		a.client.Purchase(productActivities(e.Products))
	default:
		a.logger.Debugf("catalog tracking skipped %q", event.TrackingType())
	}
}

func productActivities(products []types.Product) []ProductActivity {
	activities := make([]ProductActivity, 0, len(products))
	for _, p := range products {
		count := p.Count
		if count == 0 {
			count = 1
		}
		activities = append(activities, ProductActivity{
			DealId:   p.DealId,
			OptionId: p.OptionId,
			Count:    count,
		})
	}
	return activities
}
