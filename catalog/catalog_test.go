package catalog

import (
	"testing"

	"github.com/zacharyhill/muse-go/logger"
	"github.com/zacharyhill/muse-go/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	initCalls []Config
	views     []ViewActivity
	adds      [][]ProductActivity
	removes   [][]ProductActivity
	purchases [][]ProductActivity
}

var _ Client = &fakeClient{}

func (f *fakeClient) Init(cfg Config) {
	f.initCalls = append(f.initCalls, cfg)
}

func (f *fakeClient) View(activity ViewActivity) {
	f.views = append(f.views, activity)
}

func (f *fakeClient) AddToCart(products []ProductActivity) {
	f.adds = append(f.adds, products)
}

func (f *fakeClient) RemoveFromCart(products []ProductActivity) {
	f.removes = append(f.removes, products)
}

func (f *fakeClient) Purchase(products []ProductActivity) {
	f.purchases = append(f.purchases, products)
}

func (f *fakeClient) totalCalls() int {
	return len(f.views) + len(f.adds) + len(f.removes) + len(f.purchases)
}

func testConfig() Config {
	return Config{
		UserId:      "jl-user",
		AccessToken: "jl-token",
		FeedId:      "jl-feed",
	}
}

func TestAdapter_InitOnConstruction(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig()

	NewAdapter(client, &cfg, &logger.Noop{})

	require.Len(t, client.initCalls, 1)
	assert.Equal(t, cfg, client.initCalls[0])
}

func TestAdapter_NoCredentials_NothingForwarded(t *testing.T) {
	client := &fakeClient{}
	a := NewAdapter(client, nil, &logger.Noop{})

	events := []types.Event{
		types.View{PageName: "home"},
		types.CartUpdate{CartEventType: types.CartEventAdd},
		types.CartUpdate{CartEventType: types.CartEventRemove},
		types.Purchase{OrderId: "order-7"},
		types.UserUpdate{Email: "a@example.com"},
	}
	for _, event := range events {
		a.Forward(event)
	}

	assert.Empty(t, client.initCalls)
	assert.Zero(t, client.totalCalls())
}

func TestAdapter_NoClient_Inert(t *testing.T) {
	cfg := testConfig()
	a := NewAdapter(nil, &cfg, &logger.Noop{})

	a.Forward(types.View{PageName: "home"})
	a.Forward(types.Purchase{})
}

func TestAdapter_ForwardView(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig()
	a := NewAdapter(client, &cfg, &logger.Noop{})

	a.Forward(types.View{
		PageName:    "deals/home",
		Refinements: []string{"beauty", "spa"},
		Products:    []types.Product{{DealId: "deal-1"}},
	})

	require.Len(t, client.views, 1)
	assert.Equal(t, ViewActivity{
		PageName:    "deals/home",
		Refinements: []string{"beauty", "spa"},
	}, client.views[0])
}

func TestAdapter_ForwardCartEvents(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig()
	a := NewAdapter(client, &cfg, &logger.Noop{})

	products := []types.Product{
		{DealId: "deal-1", OptionId: "opt-1", Count: 2},
		{DealId: "deal-2"},
	}

	a.Forward(types.CartUpdate{CartEventType: types.CartEventAdd, Products: products})
	a.Forward(types.CartUpdate{CartEventType: types.CartEventRemove, Products: products})

	expect := []ProductActivity{
		{DealId: "deal-1", OptionId: "opt-1", Count: 2},
		{DealId: "deal-2", Count: 1}, // missing count defaults to 1
	}
	require.Len(t, client.adds, 1)
	assert.Equal(t, expect, client.adds[0])
	require.Len(t, client.removes, 1)
	assert.Equal(t, expect, client.removes[0])
}

func TestAdapter_ForwardPurchase(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig()
	a := NewAdapter(client, &cfg, &logger.Noop{})

	a.Forward(types.Purchase{
		OrderId:  "order-7",
		Products: []types.Product{{DealId: "deal-1", OptionId: "opt-1", Count: 3}},
	})

	require.Len(t, client.purchases, 1)
	assert.Equal(t, []ProductActivity{
		{DealId: "deal-1", OptionId: "opt-1", Count: 3},
	}, client.purchases[0])
}

func TestAdapter_UnlistedEventsAreSkipped(t *testing.T) {
	client := &fakeClient{}
	cfg := testConfig()
	a := NewAdapter(client, &cfg, &logger.Noop{})

	a.Forward(types.CartUpdate{CartEventType: types.CartEventSet})
	a.Forward(types.UserUpdate{Email: "a@example.com"})

	assert.Zero(t, client.totalCalls())
}
