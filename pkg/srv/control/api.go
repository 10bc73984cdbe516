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

// stm32-cec API
//
// # RESTful APIs to interact with the stm32-cec server
//
// Terms Of Service:
//
// Schemes: http
// Host: localhost:8000
// Version: 1.0.0
// Contact:
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package control

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/newAM/stm32-cec/pkg/cec"
	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/log"
	"github.com/newAM/stm32-cec/pkg/srv"
	"github.com/newAM/stm32-cec/pkg/srv/control/ifc"
)

// Success response
// swagger:response okResp
type RespOk struct {
	// in:body
	Body struct {
		// HTTP status code 200 - OK
		Code int `json:"code"`
	}
}

// Error Bad Request
// swagger:response badReq
type ReqBadRequest struct {
	// in:body
	Body struct {
		// HTTP status code 400 - Bad Request
		Code int `json:"code"`
	}
}

// RegHex ...
type RegHex struct {
	Name  string
	Value string // hexadecimal
}

// DeviceStatus is the register file readback plus the decoded fields
// a human cares about.
type DeviceStatus struct {
	Device   string
	PhysAddr string
	Cr       string // hexadecimal
	Cfgr     string // hexadecimal
	Isr      string // hexadecimal
	Ier      string // hexadecimal
	Rxdr     string // hexadecimal
	Enabled  bool
	Listen   bool
	Oar      string // hexadecimal
	Sft      string
	IsrFlags string
	IerFlags string
}

// PowerResult ...
type PowerResult struct {
	Device string
	Action string
	Src    string
	Dst    string
	Ok     bool
}

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	ctrl ifc.ControlServer
}

var _ ifc.ApiServer = &ApiServer{}

func NewApiServer(ctx context.Context, cfg *config.Config, ctrl ifc.ControlServer) (ifc.ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.Host, cfg.Port)

	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		ctrl:    ctrl,
	}
	return s, nil
}

func (s *ApiServer) deviceStatus(deviceName string) (*DeviceStatus, error) {
	d, err := s.ctrl.GetDeviceByName(deviceName)
	if err != nil {
		return nil, err
	}
	st := d.Status()
	return &DeviceStatus{
		Device:   d.GetName(),
		PhysAddr: d.GetPhys().String(),
		Cr:       fmt.Sprintf("0x%08X", uint32(st.Cr)),
		Cfgr:     fmt.Sprintf("0x%08X", uint32(st.Cfgr)),
		Isr:      fmt.Sprintf("0x%08X", uint32(st.Isr)),
		Ier:      fmt.Sprintf("0x%08X", uint32(st.Ier)),
		Rxdr:     fmt.Sprintf("0x%02X", st.Rxdr),
		Enabled:  st.Cr.EN(),
		Listen:   st.Cfgr.LSTN(),
		Oar:      fmt.Sprintf("0x%X", st.Cfgr.OAR()),
		Sft:      st.Cfgr.SFT().String(),
		IsrFlags: st.Isr.String(),
		IerFlags: st.Ier.String(),
	}, nil
}

func (s *ApiServer) regReadHex(deviceName, name string) (*RegHex, error) {
	d, err := s.ctrl.GetDeviceByName(deviceName)
	if err != nil {
		return nil, err
	}
	st := d.Status()
	var value string
	switch name {
	case RegCr:
		value = fmt.Sprintf("0x%08X", uint32(st.Cr))
	case RegCfgr:
		value = fmt.Sprintf("0x%08X", uint32(st.Cfgr))
	case RegIsr:
		value = fmt.Sprintf("0x%08X", uint32(st.Isr))
	case RegIer:
		value = fmt.Sprintf("0x%08X", uint32(st.Ier))
	case RegRxdr:
		value = fmt.Sprintf("0x%02X", st.Rxdr)
	default:
		return nil, srv.ErrUnknownRegister{Name: name}
	}
	return &RegHex{
		Name:  name,
		Value: value,
	}, nil
}

// Start
func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.Host, s.Config.Port)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: handlers.CombinedLoggingHandler(log.Writer(), s.Router),
		Addr:    fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	// swagger:operation POST /power/{action}/{device}/{dst} power
	// ---
	// summary: send image view on or standby to dst
	// description: src and retries come from query parameters
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/power/{action:on|standby}/{device}/{dst}", s.handlePower()).Methods("POST")
	// swagger:operation GET /devices devices
	// ---
	// summary: read back the register file of every configured device
	// description:
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/devices", s.handleDevices()).Methods("GET")
	// swagger:operation GET /status/{device} status
	// ---
	// summary: read back the register file
	// description:
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/status/{device}", s.handleStatus()).Methods("GET")
	// swagger:operation GET /trace/{device} trace
	// ---
	// summary: list recent transmit attempts, newest first
	// description:
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/trace/{device}", s.handleTrace()).Methods("GET")
	// swagger:operation GET /reg/{device}/{name} read register
	// ---
	// summary: read a single register
	// description:
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/reg/{device}/{name:"+RegNamePattern+"}", s.handleRegRead()).Methods("GET")
	s.configureDocs()
}

func (s *ApiServer) handlePower() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		log.Debug("Handling power request: device: %s action: %s dst: %s",
			vars["device"], vars["action"], vars["dst"])

		device, err := s.ctrl.GetDeviceByName(vars["device"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		dst, err := cec.ParseLogiAddr(vars["dst"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		src := device.GetSource()
		if qsrc := r.URL.Query().Get("src"); qsrc != "" {
			src, err = cec.ParseLogiAddr(qsrc)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		retries := DefaultRetries
		if qretries := r.URL.Query().Get("retries"); qretries != "" {
			retries, err = strconv.Atoi(qretries)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		switch vars["action"] {
		case ActionOn:
			err = s.ctrl.PowerOn(vars["device"], src, dst, retries)
		case ActionStandby:
			err = s.ctrl.PowerStandby(vars["device"], src, dst, retries)
		default:
			err := srv.ErrUnknownAction{What: vars["action"]}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		json.NewEncoder(w).Encode(&PowerResult{
			Device: vars["device"],
			Action: vars["action"],
			Src:    src.String(),
			Dst:    dst.String(),
			Ok:     true,
		})
	}
}

func (s *ApiServer) handleDevices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling devices request")

		statuses := []*DeviceStatus{}
		for _, d := range s.ctrl.GetAllDevices() {
			status, err := s.deviceStatus(d.GetName())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			statuses = append(statuses, status)
		}

		json.NewEncoder(w).Encode(statuses)
	}
}

func (s *ApiServer) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling status request: device: %s", vars["device"])

		status, err := s.deviceStatus(vars["device"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(status)
	}
}

func (s *ApiServer) handleTrace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling trace request: device: %s", vars["device"])

		count := DefaultTraceCount
		if qcount := r.URL.Query().Get("count"); qcount != "" {
			parsed, err := strconv.Atoi(qcount)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			count = parsed
		}

		recs, err := s.ctrl.Trace(vars["device"], count)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(recs)
	}
}

func (s *ApiServer) handleRegRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling reg read request: device: %s name: %s", vars["device"], vars["name"])

		regHex, err := s.regReadHex(vars["device"], vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(regHex)
	}
}
