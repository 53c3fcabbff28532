/*
 * Copyright 2020-2021 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Reply acknowledges every message received by the server.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Server accepts control clients and feeds their messages to the handler.
type Server struct {
	l       net.Listener
	handler *Handler
	ctx     context.Context
	cancel  context.CancelFunc

	mu    sync.Mutex
	conns map[string]net.Conn
	wg    sync.WaitGroup
}

// NewServer creates the server for the listener.
func NewServer(l net.Listener, handler *Handler) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		l:       l,
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
		conns:   make(map[string]net.Conn),
	}
}

// Addr returns the listener address.
func (s *Server) Addr() net.Addr { return s.l.Addr() }

// Serve runs the accept loop until the listener is closed.
func (s *Server) Serve() error {
	for {
		conn, err := s.l.Accept()
		if err != nil {
			if listenerClosed(err) || s.ctx.Err() != nil {
				return nil
			}
			log.Warnf("control pipe accept: %v", err)
			continue
		}
		id := uuid.New().String()
		s.mu.Lock()
		s.conns[id] = conn
		s.mu.Unlock()
		s.wg.Add(1)
		go s.serveConn(id, conn)
	}
}

func (s *Server) serveConn(id string, conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, id)
		s.mu.Unlock()
		conn.Close()
	}()

	logger := log.WithField("conn", id)
	logger.Debug("control client connected")

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var m Msg
		if err := dec.Decode(&m); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) && s.ctx.Err() == nil {
				logger.Errorf("control pipe read: %v", err)
			}
			return
		}
		reply := Reply{OK: true}
		if err := s.handler.Handle(s.ctx, m); err != nil {
			logger.WithField("type", m.Type).Warnf("unable to apply control message: %v", err)
			reply = Reply{Error: err.Error()}
		}
		if err := enc.Encode(reply); err != nil {
			logger.Errorf("control pipe write: %v", err)
			return
		}
	}
}

// Close stops accepting clients and disconnects the connected ones.
func (s *Server) Close() error {
	s.cancel()
	err := s.l.Close()
	s.mu.Lock()
	for _, conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	return err
}
