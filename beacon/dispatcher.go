package beacon

import (
	"github.com/zacharyhill/muse-go/logger"
	"github.com/zacharyhill/muse-go/types"
)

// Dispatcher turns one shaped payload into one outbound beacon.
// Delivery is fire-and-forget: every failure ends in a log line, never
// in a returned error, because analytics beacons tolerate loss.
type Dispatcher struct {
	transport Transport
	baseUrl   string
	buildUrl  URLBuilder
	logger    logger.Logger
}

func NewDispatcher(
	transport Transport,
	baseUrl string,
	buildUrl URLBuilder,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		baseUrl:   baseUrl,
		buildUrl:  buildUrl,
		logger:    logger,
	}
}

func (d *Dispatcher) Dispatch(trackingType types.TrackingType, payload map[string]interface{}) {
	var url string
	var err error
	if d.buildUrl != nil {
		url, err = d.buildUrl(trackingType, payload)
	} else {
		url, err = DefaultURL(d.baseUrl, trackingType, payload)
	}
	if err != nil {
		d.logger.Errorf("failed to build %s beacon url: %v", trackingType, err)
		return
	}

	d.logger.Debugf("sending %s beacon: %s", trackingType, url)
	if err := d.transport.Send(url); err != nil {
		d.logger.Warnf("%s beacon delivery failed: %v", trackingType, err)
	}
}
