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
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/log"
	"github.com/newAM/stm32-cec/pkg/srv"
	"github.com/newAM/stm32-cec/pkg/srv/control/ifc"
)

const (
	BucketNamePrefix = "trace_"
)

// TraceState keeps the per device transmit history.
type TraceState struct {
	context.Context
	DB *bbolt.DB
}

var _ ifc.State = &TraceState{}

func NewTraceState(ctx context.Context, cfg *config.Config) (*TraceState, error) {
	// open trace database
	db, err := bbolt.Open(cfg.DBPath, 0600, nil)
	if err != nil {
		return nil, err
	}
	// create buckets in the trace database for all devices
	if err = db.Update(func(tx *bbolt.Tx) error {
		for _, device := range cfg.Devices {
			_, err = tx.CreateBucketIfNotExists([]byte(bucketName(device.Name)))
			if err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &TraceState{
		Context: ctx,
		DB:      db,
	}, nil
}

func uint64ToByte(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func bucketName(deviceName string) string {
	return fmt.Sprintf("%s%s", BucketNamePrefix, deviceName)
}

// Close ...
func (s *TraceState) Close() {
	s.DB.Close()
}

// Append ...
func (s *TraceState) Append(deviceName string, rec *srv.TraceRecord) error {
	log.Debug("Appending trace record: device: %s text: %s", deviceName, rec.Text)
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(deviceName)))
		if b == nil {
			return errors.New(fmt.Sprintf("Bucket not found: %s", bucketName(deviceName)))
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		value, err := yaml.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(uint64ToByte(seq), value)
	}); err != nil {
		return err
	}
	return nil
}

// List returns up to count records, newest first.
func (s *TraceState) List(deviceName string, count int) ([]*srv.TraceRecord, error) {
	log.Debug("Listing trace records: device: %s count: %d", deviceName, count)
	var recs []*srv.TraceRecord
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(deviceName)))
		if b == nil {
			return errors.New(fmt.Sprintf("Bucket not found: %s", bucketName(deviceName)))
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(recs) < count; k, v = c.Prev() {
			rec := &srv.TraceRecord{}
			if err := yaml.Unmarshal(v, rec); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return recs, nil
}
