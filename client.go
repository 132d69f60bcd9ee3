package muse_go

import (
	"strings"

	"github.com/zacharyhill/muse-go/beacon"
	"github.com/zacharyhill/muse-go/catalog"
	"github.com/zacharyhill/muse-go/identity"
	"github.com/zacharyhill/muse-go/logger"
	"github.com/zacharyhill/muse-go/types"
)

// Client shapes shopping events into flat beacon payloads and fires
// them at the tracking endpoint. Every tracking call is independent:
// shape one payload, send one beacon, optionally forward to the
// catalog adapter. Nothing is queued, retried or confirmed.
type Client struct {
	clientId    string
	merchantIds []string

	identity   *identity.Manager
	dispatcher *beacon.Dispatcher
	catalog    *catalog.Adapter
	logger     logger.Logger
}

func NewClient(clientId string, merchantIds []string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		clientId:    clientId,
		merchantIds: merchantIds,
		identity:    cfg.buildIdentity(),
		dispatcher: beacon.NewDispatcher(
			cfg.buildTransport(),
			cfg.baseUrl,
			cfg.buildUrl,
			cfg.logger,
		),
		catalog: catalog.NewAdapter(cfg.catalogClient, cfg.catalogConfig, cfg.logger),
		logger:  cfg.logger,
	}
}

func (c *Client) TrackView(session Session, view types.View) {
	c.Dispatch(session, view)
}

func (c *Client) TrackCartUpdate(session Session, cart types.CartUpdate) {
	c.Dispatch(session, cart)
}

func (c *Client) TrackPurchase(session Session, purchase types.Purchase) {
	c.Dispatch(session, purchase)
}

// SetUser merges the update into the session's user, preferring new
// values and keeping previous ones where the update is empty, then
// fires a setUser beacon carrying the previous visitor token so the
// tracking backend can correlate the identified visitor with their
// anonymous history. Returns the replacement session snapshot.
func (c *Client) SetUser(session Session, update types.UserUpdate) Session {
	prevToken, _ := c.identity.Identity()

	next := session
	if update.Email != "" {
		next.User.Email = update.Email
	}
	if update.Name != "" {
		next.User.Name = update.Name
	}

	c.dispatch(next, update, map[string]interface{}{
		"prevUserId": prevToken,
	})
	return next
}

// Dispatch shapes and fires one beacon for any event kind. The typed
// wrappers above are the usual entry points; Dispatch is the generic
// one.
func (c *Client) Dispatch(session Session, event types.Event) {
	c.dispatch(session, event, nil)
}

func (c *Client) dispatch(session Session, event types.Event, extra map[string]interface{}) {
	// Identity is persisted before the payload is built, so the very
	// first event of a new visitor already carries the token that all
	// later events will reuse.
	token := c.identity.EnsureIdentity()

	payload := map[string]interface{}{
		"trackingType": string(event.TrackingType()),
		"clientId":     c.clientId,
		"user": types.User{
			Id:    token,
			Email: session.User.Email,
			Name:  session.User.Name,
		},
	}
	if mrid := strings.Join(c.merchantIds, ","); mrid != "" {
		payload["mrid"] = mrid
	}
	if session.PropertyId != "" {
		payload["propertyId"] = session.PropertyId
	}
	for k, v := range event.DataFields() {
		payload[k] = v
	}
	for k, v := range extra {
		payload[k] = v
	}

	switch e := event.(type) {
	case types.CartUpdate:
		if e.CartEventType == types.CartEventAdd {
			c.identity.SaveCartSnapshot(payload)
		}
	case types.Purchase:
		c.identity.ClearCartSnapshot()
	case types.View, types.UserUpdate:
	}

	c.dispatcher.Dispatch(event.TrackingType(), payload)
	c.catalog.Forward(event)
}

// Identity exposes the persisted visitor token, mostly for hosts that
// want to stamp it onto their own requests.
func (c *Client) Identity() (string, bool) {
	return c.identity.Identity()
}

// CartSnapshot returns the most recent add-to-cart payload, if one was
// persisted within the last seven days.
func (c *Client) CartSnapshot() (map[string]interface{}, bool) {
	return c.identity.CartSnapshot()
}
