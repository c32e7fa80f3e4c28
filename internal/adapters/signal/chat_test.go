package signal

import (
	"encoding/json"
	"testing"
)

func TestCoordinateUnmarshal(t *testing.T) {
	var p struct {
		Latitude  Coordinate `json:"latitude"`
		Longitude Coordinate `json:"longitude"`
	}
	cases := []struct {
		in       string
		lat, lon string
		wantErr  bool
	}{
		{`{"latitude": 51.5, "longitude": -0.12}`, "51.5", "-0.12", false},
		{`{"latitude": "51.5", "longitude": "-0.12"}`, "51.5", "-0.12", false},
		{`{"latitude": "", "longitude": 3}`, "", "3", false},
		{`{"latitude": null}`, "", "", false},
		{`{"latitude": true}`, "", "", true},
	}
	for _, tc := range cases {
		p.Latitude, p.Longitude = "", ""
		err := json.Unmarshal([]byte(tc.in), &p)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			continue
		}
		if string(p.Latitude) != tc.lat || string(p.Longitude) != tc.lon {
			t.Errorf("%s: got %q,%q want %q,%q", tc.in, p.Latitude, p.Longitude, tc.lat, tc.lon)
		}
	}
}
