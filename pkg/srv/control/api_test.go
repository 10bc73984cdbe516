/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package control

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newAM/stm32-cec/pkg/srv"
)

func newTestApiServer(t *testing.T) *ApiServer {
	t.Helper()
	cfg := newTestConfig(t)

	ctrl, err := NewControlServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewControlServer: %v", err)
	}
	cs := ctrl.(*ControlServer)
	t.Cleanup(cs.state.Close)

	api := cs.api.(*ApiServer)
	api.configureRouter()
	return api
}

func (s *ApiServer) serve(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestApiStatus(t *testing.T) {
	api := newTestApiServer(t)

	w := api.serve("GET", "/api/status/cec0")
	if w.Code != http.StatusOK {
		t.Fatalf("status code: got %d body: %s", w.Code, w.Body.String())
	}

	var status DeviceStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Device != "cec0" {
		t.Errorf("device: %q", status.Device)
	}
	if !status.Enabled || !status.Listen {
		t.Errorf("enabled: %t listen: %t", status.Enabled, status.Listen)
	}
	if status.Cr != "0x00000001" {
		t.Errorf("cr: %q", status.Cr)
	}
	if status.Cfgr != "0x80080070" {
		t.Errorf("cfgr: %q", status.Cfgr)
	}
	if status.Oar != "0x8" {
		t.Errorf("oar: %q", status.Oar)
	}
	if status.Ier != "0x00001FFF" {
		t.Errorf("ier: %q", status.Ier)
	}
	if status.IsrFlags != "NONE" {
		t.Errorf("isr flags: %q", status.IsrFlags)
	}
	if status.PhysAddr != "0.0.0.0" {
		t.Errorf("phys addr: %q", status.PhysAddr)
	}

	if w := api.serve("GET", "/api/status/nope"); w.Code != http.StatusNotFound {
		t.Errorf("unknown device status code: %d", w.Code)
	}
}

func TestApiDevices(t *testing.T) {
	api := newTestApiServer(t)

	w := api.serve("GET", "/api/devices")
	if w.Code != http.StatusOK {
		t.Fatalf("status code: got %d body: %s", w.Code, w.Body.String())
	}
	var statuses []*DeviceStatus
	if err := json.NewDecoder(w.Body).Decode(&statuses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("devices: got %d want 1", len(statuses))
	}
	if statuses[0].Device != "cec0" || !statuses[0].Enabled {
		t.Errorf("device 0: %+v", statuses[0])
	}
}

func TestApiPower(t *testing.T) {
	api := newTestApiServer(t)

	w := api.serve("POST", "/api/power/on/cec0/tv")
	if w.Code != http.StatusOK {
		t.Fatalf("status code: got %d body: %s", w.Code, w.Body.String())
	}

	var result PowerResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Device != "cec0" || result.Action != ActionOn || !result.Ok {
		t.Errorf("result: %+v", result)
	}
	if result.Src != "broadcast" || result.Dst != "tv" {
		t.Errorf("addresses: src %q dst %q", result.Src, result.Dst)
	}

	// src override via query parameter.
	w = api.serve("POST", "/api/power/standby/cec0/tv?src=playbackdev1&retries=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status code: got %d body: %s", w.Code, w.Body.String())
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Src != "playbackdev1" || result.Action != ActionStandby {
		t.Errorf("result: %+v", result)
	}

	w = api.serve("GET", "/api/trace/cec0?count=5")
	if w.Code != http.StatusOK {
		t.Fatalf("trace status code: got %d body: %s", w.Code, w.Body.String())
	}
	var recs []*srv.TraceRecord
	if err := json.NewDecoder(w.Body).Decode(&recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("trace records: got %d want 2", len(recs))
	}
	// Newest first.
	if recs[0].Text != "playbackdev1 -> tv: Standby" {
		t.Errorf("record 0 text: %q", recs[0].Text)
	}
	if recs[1].Text != "broadcast -> tv: ImageViewOn" {
		t.Errorf("record 1 text: %q", recs[1].Text)
	}
	if !recs[0].Ok || !recs[1].Ok {
		t.Error("records not marked ok")
	}
}

func TestApiPowerBadRequest(t *testing.T) {
	api := newTestApiServer(t)

	cases := []struct {
		target string
		code   int
	}{
		{"/api/power/on/cec0/bogus", http.StatusBadRequest},
		{"/api/power/on/cec0/tv?src=junk", http.StatusBadRequest},
		{"/api/power/on/cec0/tv?retries=x", http.StatusBadRequest},
		{"/api/power/on/nope/tv", http.StatusNotFound},
		// Unknown actions never match the route pattern.
		{"/api/power/toggle/cec0/tv", http.StatusNotFound},
	}
	for _, c := range cases {
		if w := api.serve("POST", c.target); w.Code != c.code {
			t.Errorf("%s: status code got %d want %d", c.target, w.Code, c.code)
		}
	}
}

func TestApiTraceBadCount(t *testing.T) {
	api := newTestApiServer(t)

	if w := api.serve("GET", "/api/trace/cec0?count=x"); w.Code != http.StatusBadRequest {
		t.Errorf("status code: %d", w.Code)
	}
	if w := api.serve("GET", "/api/trace/nope"); w.Code != http.StatusNotFound {
		t.Errorf("unknown device status code: %d", w.Code)
	}
}

func TestApiRegRead(t *testing.T) {
	api := newTestApiServer(t)

	cases := []struct {
		name  string
		value string
	}{
		{RegCr, "0x00000001"},
		{RegCfgr, "0x80080070"},
		{RegIsr, "0x00000000"},
		{RegIer, "0x00001FFF"},
		{RegRxdr, "0x00"},
	}
	for _, c := range cases {
		w := api.serve("GET", "/api/reg/cec0/"+c.name)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status code: got %d body: %s", c.name, w.Code, w.Body.String())
		}
		var regHex RegHex
		if err := json.NewDecoder(w.Body).Decode(&regHex); err != nil {
			t.Fatalf("%s: decode: %v", c.name, err)
		}
		if regHex.Name != c.name || regHex.Value != c.value {
			t.Errorf("%s: got %s = %s want %s", c.name, regHex.Name, regHex.Value, c.value)
		}
	}

	// Names outside the pattern never reach the handler.
	if w := api.serve("GET", "/api/reg/cec0/bogus"); w.Code != http.StatusNotFound {
		t.Errorf("bad name status code: %d", w.Code)
	}
	if w := api.serve("GET", "/api/reg/nope/cr"); w.Code != http.StatusNotFound {
		t.Errorf("unknown device status code: %d", w.Code)
	}
}

func TestApiDocs(t *testing.T) {
	api := newTestApiServer(t)

	w := api.serve("GET", "/swagger.json")
	if w.Code != http.StatusOK {
		t.Fatalf("swagger.json status code: %d", w.Code)
	}
	var doc map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["swagger"] != "2.0" {
		t.Errorf("swagger version: %v", doc["swagger"])
	}

	w = api.serve("GET", "/docs")
	if w.Code != http.StatusOK {
		t.Fatalf("docs status code: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "redoc") {
		t.Error("docs page missing redoc bootstrap")
	}
}
