package muse_go

import (
	"net/http"
	"time"

	"github.com/zacharyhill/muse-go/beacon"
	"github.com/zacharyhill/muse-go/catalog"
	"github.com/zacharyhill/muse-go/identity"
	"github.com/zacharyhill/muse-go/logger"
)

type config struct {
	// transport sends one best-effort beacon request.
	// It's useful for mocking or for hosts that deliver beacons
	// through something other than a plain HTTP GET.
	// default: beacon.Pixel over http.DefaultTransport
	transport beacon.Transport

	// timeout sets the maximum duration for beacon requests made by
	// the default transport before they are cancelled.
	// Ignored when a custom transport is configured.
	// default: 10 seconds
	timeout time.Duration

	// baseUrl is the origin the default URL template points at.
	// default: beacon.DefaultBaseUrl
	baseUrl string

	// buildUrl overrides the default URL template entirely; its
	// return value is used verbatim as the request URL.
	// default: nil (use the template)
	buildUrl beacon.URLBuilder

	// store persists the visitor identity and the cart snapshot.
	// default: identity.NewMemory()
	store identity.Store

	// generateId produces new visitor tokens.
	// default: random UUID
	generateId func() string

	// logger provides logging functionality for all internal
	// muse-go client operations
	// default: logger.Noop
	logger logger.Logger

	// catalogClient / catalogConfig enable the third-party
	// catalog-tracking integration. Both must be set; otherwise no
	// event is ever forwarded.
	// default: nil (disabled)
	catalogClient catalog.Client
	catalogConfig *catalog.Config
}

func defaultConfig() *config {
	return &config{
		timeout: 10 * time.Second,
		baseUrl: beacon.DefaultBaseUrl,
		logger:  logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithTransport(transport beacon.Transport) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithURLBuilder(buildUrl beacon.URLBuilder) ConfigOption {
	return func(c *config) {
		c.buildUrl = buildUrl
	}
}

func WithStore(store identity.Store) ConfigOption {
	return func(c *config) {
		c.store = store
	}
}

func WithIdGenerator(generate func() string) ConfigOption {
	return func(c *config) {
		c.generateId = generate
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithCatalogTracking(client catalog.Client, cfg catalog.Config) ConfigOption {
	return func(c *config) {
		c.catalogClient = client
		c.catalogConfig = &cfg
	}
}

func (c *config) buildTransport() beacon.Transport {
	if c.transport != nil {
		return c.transport
	}
	return beacon.NewPixel(&http.Client{Timeout: c.timeout})
}

func (c *config) buildStore() identity.Store {
	if c.store != nil {
		return c.store
	}
	return identity.NewMemory()
}

func (c *config) buildIdentity() *identity.Manager {
	store := c.buildStore()
	if c.generateId != nil {
		return identity.NewManagerWithGenerator(store, c.generateId)
	}
	return identity.NewManager(store)
}
