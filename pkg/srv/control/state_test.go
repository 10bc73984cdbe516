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
	"fmt"
	"path/filepath"
	"testing"

	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/srv"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "state.db")
	cfg.Sim = true
	return cfg
}

func TestTraceStateAppendList(t *testing.T) {
	cfg := newTestConfig(t)
	state, err := NewTraceState(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewTraceState: %v", err)
	}
	defer state.Close()

	for i := 1; i <= 3; i++ {
		rec := &srv.TraceRecord{
			Time:    srv.Now(),
			Frame:   []byte{0x40, 0x36},
			Text:    fmt.Sprintf("record %d", i),
			Ok:      i == 3,
			Attempt: i,
		}
		if err := state.Append(config.DefaultDeviceName, rec); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	recs, err := state.List(config.DefaultDeviceName, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("List: got %d records want 2", len(recs))
	}
	// Newest first.
	if recs[0].Text != "record 3" || recs[1].Text != "record 2" {
		t.Errorf("order: got %q, %q", recs[0].Text, recs[1].Text)
	}
	if !recs[0].Ok || recs[0].Attempt != 3 {
		t.Errorf("record fields lost: %+v", recs[0])
	}
	if len(recs[0].Frame) != 2 || recs[0].Frame[0] != 0x40 {
		t.Errorf("frame bytes lost: % X", recs[0].Frame)
	}

	// Asking for more than stored returns everything.
	recs, err = state.List(config.DefaultDeviceName, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("List: got %d records want 3", len(recs))
	}
}

func TestTraceStateUnknownDevice(t *testing.T) {
	cfg := newTestConfig(t)
	state, err := NewTraceState(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewTraceState: %v", err)
	}
	defer state.Close()

	if err := state.Append("nope", &srv.TraceRecord{}); err == nil {
		t.Error("Append to unknown device did not fail")
	}
	if _, err := state.List("nope", 1); err == nil {
		t.Error("List of unknown device did not fail")
	}
}
