package beacon

import (
	"io"
	"net/http"

	"github.com/zacharyhill/muse-go/errors"
)

// Transport sends one best-effort, unconfirmed request. The original
// implementation did this by pointing an off-screen image element at
// the tracking URL; Pixel is the portable equivalent.
type Transport interface {
	Send(url string) error
}

// Pixel delivers beacons as plain HTTP GETs, discarding the response
// body the way a browser discards a tracking pixel.
type Pixel struct {
	httpClient *http.Client
}

var _ Transport = &Pixel{}

func NewPixel(httpClient *http.Client) *Pixel {
	return &Pixel{
		httpClient: httpClient,
	}
}

func (p *Pixel) Send(url string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return &errors.BeaconError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}
	req.Header.Set("Accept", "image/gif")

	res, err := p.httpClient.Do(req)
	if err != nil {
		return &errors.BeaconError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}
	if res.Body != nil {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &errors.BeaconError{
			Stage:          errors.STAGE_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			HttpStatusCode: res.StatusCode,
		}
	}
	return nil
}
