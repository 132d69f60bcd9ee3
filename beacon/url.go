package beacon

import (
	"encoding/base64"
	"encoding/json"
	"net/url"

	"github.com/zacharyhill/muse-go/errors"
	"github.com/zacharyhill/muse-go/types"
)

const (
	DefaultBaseUrl = "https://www.paypal.com"

	// PathTrack is the templated tracking endpoint; the tracking type
	// is appended as the last path segment.
	PathTrack = "targeting/track"
)

// URLBuilder lets hosts replace the default tracking endpoint. The
// returned string is used verbatim as the request URL.
type URLBuilder func(trackingType types.TrackingType, payload map[string]interface{}) (string, error)

// EncodePayload serializes a payload for the data query parameter:
// JSON, then base64, then URL-encoding.
func EncodePayload(payload map[string]interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", &errors.BeaconError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: err,
		}
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(data)), nil
}

// DecodePayload reverses EncodePayload. It exists for hosts that
// terminate the tracking endpoint themselves.
func DecodePayload(encoded string) (map[string]interface{}, error) {
	unescaped, err := url.QueryUnescape(encoded)
	if err != nil {
		return nil, &errors.BeaconError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_URL_BUILD,
			SourceErr: err,
		}
	}
	data, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return nil, &errors.BeaconError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_URL_BUILD,
			SourceErr: err,
		}
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &errors.BeaconError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: err,
		}
	}
	return payload, nil
}

// DefaultURL builds the templated tracking URL:
// <base>/targeting/track/<trackingType>?data=<encoded payload>
func DefaultURL(baseUrl string, trackingType types.TrackingType, payload map[string]interface{}) (string, error) {
	encoded, err := EncodePayload(payload)
	if err != nil {
		return "", err
	}
	return baseUrl + "/" + PathTrack + "/" + string(trackingType) + "?data=" + encoded, nil
}
