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
	"encoding/json"
	"net/http"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/runtime/middleware"

	"github.com/newAM/stm32-cec/pkg/log"
)

const swaggerJSON = `{
  "swagger": "2.0",
  "info": {
    "title": "stm32-cec API",
    "version": "1.0.0"
  },
  "basePath": "/api",
  "consumes": ["application/json"],
  "produces": ["application/json"],
  "paths": {
    "/power/{action}/{device}/{dst}": {
      "post": {
        "summary": "Send image view on or standby to dst",
        "parameters": [
          {"name": "action", "in": "path", "required": true, "type": "string", "enum": ["on", "standby"]},
          {"name": "device", "in": "path", "required": true, "type": "string"},
          {"name": "dst", "in": "path", "required": true, "type": "string"},
          {"name": "src", "in": "query", "required": false, "type": "string"},
          {"name": "retries", "in": "query", "required": false, "type": "integer"}
        ],
        "responses": {
          "200": {"description": "transmission acknowledged"},
          "400": {"description": "bad address or retries"},
          "404": {"description": "device not found"},
          "502": {"description": "transmission failed"}
        }
      }
    },
    "/devices": {
      "get": {
        "summary": "Read back the register file of every configured device",
        "responses": {
          "200": {"description": "register file readback per device"}
        }
      }
    },
    "/status/{device}": {
      "get": {
        "summary": "Read back the register file",
        "parameters": [
          {"name": "device", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {
          "200": {"description": "register file readback"},
          "404": {"description": "device not found"}
        }
      }
    },
    "/trace/{device}": {
      "get": {
        "summary": "List recent transmit attempts, newest first",
        "parameters": [
          {"name": "device", "in": "path", "required": true, "type": "string"},
          {"name": "count", "in": "query", "required": false, "type": "integer"}
        ],
        "responses": {
          "200": {"description": "trace records"},
          "404": {"description": "device not found"}
        }
      }
    },
    "/reg/{device}/{name}": {
      "get": {
        "summary": "Read a single register",
        "parameters": [
          {"name": "device", "in": "path", "required": true, "type": "string"},
          {"name": "name", "in": "path", "required": true, "type": "string", "enum": ["cr", "cfgr", "isr", "ier", "rxdr"]}
        ],
        "responses": {
          "200": {"description": "register value"},
          "404": {"description": "device not found"}
        }
      }
    }
  }
}`

// configureDocs serves the swagger document and a Redoc page over it
func (s *ApiServer) configureDocs() {
	doc, err := loads.Analyzed(json.RawMessage(swaggerJSON), "")
	if err != nil {
		log.Error("Error while loading swagger document: %s", err)
		return
	}
	spec := doc.Raw()
	s.Router.HandleFunc("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(spec)
	}).Methods("GET")
	s.Router.Handle("/docs", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/swagger.json",
	}, nil))
}
